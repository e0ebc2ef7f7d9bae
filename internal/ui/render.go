package ui

import (
    "strings"

    xansi "github.com/charmbracelet/x/ansi"
)

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content. Left is truncated first.
func renderStatusBar(width int, left, right string) string {
    w := width
    if w <= 0 {
        w = 80
    }
    lw := xansi.StringWidth(left)
    rw := xansi.StringWidth(right)
    if rw > w {
        right = xansi.Truncate(right, w, "")
        rw = xansi.StringWidth(right)
    }
    if lw+rw > w {
        // keep one space between sections when possible
        maxL := w - rw - 1
        if maxL < 0 {
            maxL = 0
        }
        left = xansi.Truncate(left, maxL, "…")
        lw = xansi.StringWidth(left)
    }
    pad := w - lw - rw
    if pad < 0 {
        pad = 0
    }
    return left + StatusBarBase().Render(strings.Repeat(" ", pad)+right)
}
