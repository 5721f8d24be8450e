package main

// Sample represents one benchmark article.
type Sample struct {
	Name string
	Text string
}

// Samples are short articles at varying lengths, loosely written so the
// polishing task has something to fix and the social task has something
// to condense.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "We shipped the new importer last night and it cut sync times in half. More details coming later this week.",
	},
	{
		Name: "short",
		Text: `Over the last month we rewrote our ingestion pipeline. The old one was built around nightly batch jobs and it was falling over every time a customer uploaded more than a few gigabytes. The new pipeline streams records as they arrive, validates them in place, and writes to the warehouse continuously. Median freshness dropped from nine hours to under four minutes and we haven't had a single overnight page since the cutover.`,
	},
	{
		Name: "medium",
		Text: `When we started the migration to the new billing system we thought it would take a quarter. It took three. Here is what we learned.

First, the data was worse than we believed. Invoices from before 2019 used a different tax model and nobody had written down the conversion rules, so we had to reverse engineer them from the old codebase. Second, running both systems in parallel was the single best decision we made. Every mismatch between the old and new totals was a bug we caught before a customer did. Third, feature freezes don't work. Sales kept selling, finance kept closing the books, and the migration had to absorb every change along the way.

If you are planning something similar: budget double, shadow everything, and assign one person whose only job is reconciliation. It is boring work and it will save you.`,
	},
}
