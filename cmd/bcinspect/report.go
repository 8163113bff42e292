package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/llvm-bitcode/bitcode"
	"github.com/wippyai/llvm-bitcode/source"
)

// Report is the machine readable summary printed by inspect.
type Report struct {
	Wrapper    *WrapperReport   `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
	Bitstream  *BitstreamReport `json:"bitstream,omitempty" yaml:"bitstream,omitempty"`
	Path       string           `json:"path" yaml:"path"`
	Magic      string           `json:"magic" yaml:"magic"`
	Kind       string           `json:"kind" yaml:"kind"`
	Error      string           `json:"error,omitempty" yaml:"error,omitempty"`
	Size       int64            `json:"size" yaml:"size"`
	Compressed bool             `json:"compressed" yaml:"compressed"`
}

// WrapperReport describes the Bitcode Wrapper header.
type WrapperReport struct {
	Findings         []string `json:"findings,omitempty" yaml:"findings,omitempty"`
	Version          uint32   `json:"version" yaml:"version"`
	Offset           uint32   `json:"offset" yaml:"offset"`
	Size             uint32   `json:"size" yaml:"size"`
	Reserved         uint32   `json:"reserved" yaml:"reserved"`
	OffsetAligned4   bool     `json:"offset_aligned_4" yaml:"offset_aligned_4"`
	SizeValid        bool     `json:"size_valid" yaml:"size_valid"`
	VersionSupported bool     `json:"version_supported" yaml:"version_supported"`
}

// BitstreamReport describes the payload handed to a bitstream decoder.
type BitstreamReport struct {
	BLAKE3 string `json:"blake3" yaml:"blake3"`
	Length int    `json:"length" yaml:"length"`
}

func buildReport(src *source.Source, f *bitcode.File) Report {
	r := Report{
		Path:       src.Path(),
		Size:       f.Size(),
		Compressed: src.Compressed(),
		Magic:      fmt.Sprintf("0x%08X", f.Magic),
		Kind:       f.Kind().String(),
	}

	if w, ok := f.Wrapper(); ok {
		wr := &WrapperReport{
			Version:          w.Version,
			Offset:           w.Offset,
			Size:             w.Size,
			Reserved:         w.Reserved,
			OffsetAligned4:   w.IsOffsetAligned4(),
			SizeValid:        w.IsSizeValid(),
			VersionSupported: w.IsVersionSupported(),
		}
		for _, err := range multierr.Errors(w.Check()) {
			wr.Findings = append(wr.Findings, err.Error())
		}
		r.Wrapper = wr
	}

	data, err := f.Bitstream()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Bitstream = &BitstreamReport{
		Length: len(data),
		BLAKE3: source.Digest(data),
	}
	return r
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// writeReport renders r as text, json or yaml. Text is styled only when
// styled is true.
func writeReport(w io.Writer, r Report, format string, styled bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := io.WriteString(w, renderText(r, styled))
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func renderText(r Report, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}
	flag := func(ok bool) string {
		if ok {
			return render(okStyle, "yes")
		}
		return render(errorStyle, "no")
	}
	line := func(b *strings.Builder, label, value string) {
		b.WriteString(render(labelStyle, fmt.Sprintf("%-18s", label)))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	var b strings.Builder
	title := "Bitcode"
	if r.Path != "" {
		title += " " + r.Path
	}
	b.WriteString(render(titleStyle, title))
	b.WriteString("\n\n")

	line(&b, "size", fmt.Sprintf("%d bytes", r.Size))
	if r.Compressed {
		line(&b, "compressed", "xz")
	}
	line(&b, "magic", r.Magic)
	line(&b, "container", r.Kind)

	if wr := r.Wrapper; wr != nil {
		line(&b, "version", fmt.Sprintf("%d", wr.Version))
		line(&b, "offset", fmt.Sprintf("%d", wr.Offset))
		line(&b, "size field", fmt.Sprintf("%d", wr.Size))
		line(&b, "reserved", fmt.Sprintf("0x%08X", wr.Reserved))
		line(&b, "offset aligned", flag(wr.OffsetAligned4))
		line(&b, "size valid", flag(wr.SizeValid))
		line(&b, "version supported", flag(wr.VersionSupported))
		for _, f := range wr.Findings {
			line(&b, "finding", render(helpStyle, f))
		}
	}

	if bs := r.Bitstream; bs != nil {
		line(&b, "bitstream", fmt.Sprintf("%d bytes", bs.Length))
		line(&b, "blake3", bs.BLAKE3)
	}
	if r.Error != "" {
		line(&b, "error", render(errorStyle, r.Error))
	}
	return b.String()
}
