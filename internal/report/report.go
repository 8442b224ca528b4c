// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package report prints user-facing diagnostics.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes styled diagnostics. Styling follows the color profile of
// the writer, so plain buffers and pipes get no escape codes.
type Reporter struct {
	mu    sync.Mutex
	w     io.Writer
	err   lipgloss.Style
	warn  lipgloss.Style
	info  lipgloss.Style
	muted lipgloss.Style
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:     w,
		err:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		warn:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		info:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		muted: r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *Reporter) Error(msg string) { r.print(r.err, "error", msg) }

func (r *Reporter) Warn(msg string) { r.print(r.warn, "warn", msg) }

func (r *Reporter) Info(msg string) { r.print(r.info, "info", msg) }

// Detail prints an indented, muted line under the previous message.
func (r *Reporter) Detail(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, "  "+r.muted.Render(msg))
}

func (r *Reporter) print(style lipgloss.Style, label, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg = strings.TrimRight(msg, "\n")
	_, _ = fmt.Fprintf(r.w, "%s %s\n", style.Render(label+":"), msg)
}
