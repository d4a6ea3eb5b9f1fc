// Package siteinfo analyzes company websites. It fetches a site's
// homepage plus its linked About and Contact pages, extracts structured
// information (title, email addresses, social profile links, main
// content text), optionally summarizes the company description, and
// answers free-form follow-up questions through a text-generation
// service augmented with live web search.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, gemini/, tavily/).
package siteinfo
