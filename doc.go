// Package main provides the entry point for the feedback collector.
// It runs a Fiber web server that lets visitors submit feedback (name, email,
// rating and comment) and lets a single administrator view aggregated
// statistics, browse the submissions and export them as CSV. Submissions are
// persisted with gorm in a single append-only feedback table.
package main
