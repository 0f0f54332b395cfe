// Package scaffold turns catalog template files into files on disk. Rewrite
// resolves the ".jsx" placeholder extension for the selected language, Render
// maps template files onto absolute paths, and Writer persists them, logging
// whenever an existing file is replaced.
package scaffold
