// Command loopcast is the weekly content-publishing pipeline CLI: it turns
// authored episode metadata plus a video into a validated post package,
// derives per-platform text, and dispatches to platform adapters inside
// locked posting windows.
package main
