// Package process stops browser processes started for PDF export.
package process
