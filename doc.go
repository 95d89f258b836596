// ipdossier collects everything public geolocation services know about
// an IP address and prints it as a single report.
//
// Idea is simple: you have an IP address like 1.2.3.4 and you want to
// know where it is, who owns it and what country it belongs to. There
// are plenty of free services which answer a part of this question.
// ipdossier asks all of them at once and merges their answers.
//
// Tool itself is organized into 3 logical parts:
//
// Dossier
//
// dossier is a main package of the application which contains Dossier
// struct and the merge logic. Dossier has a set of pluggable providers
// and an optional knowledge graph which adds country facts.
//
// Providers
//
// This package has implementations of providers for ipapi.co,
// ipinfo.io, ip-api.com and ipwho.is. Also, it has a Wikidata knowledge
// graph.
//
// ipdossier
//
// A main package itself is an example of how to wire both dossier and
// providers. It is a CLI which prints a report to the terminal.
package main
