// Package proddesc enriches product catalogs with short generated descriptions.
// For every catalog row that has a name but no description it searches the web,
// scrapes the top result pages and asks a language model to summarize them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, ollama/, excelize/).
package proddesc
