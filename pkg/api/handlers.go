package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/multicolumn/pkg/editor"
	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/i18n"
	"github.com/matzehuels/multicolumn/pkg/layout"
	"github.com/matzehuels/multicolumn/pkg/observability"
	"github.com/matzehuels/multicolumn/pkg/settings"
	"github.com/matzehuels/multicolumn/pkg/width"
	"github.com/matzehuels/multicolumn/pkg/width/htmldoc"
)

// BlockRequest selects a block by preset name, custom ratio text, or explicit
// columns and ratios, in that order of precedence.
type BlockRequest struct {
	Preset     string    `json:"preset,omitempty"`
	Custom     string    `json:"custom,omitempty"`
	Columns    int       `json:"columns,omitempty"`
	Ratios     []float64 `json:"ratios,omitempty"`
	Flags      []string  `json:"flags,omitempty"`
	Horizontal *bool     `json:"horizontal,omitempty"` // overrides the stored setting
}

// BlockResponse carries the generated text and where the cursor should go
// relative to the insertion point.
type BlockResponse struct {
	Text   string          `json:"text"`
	Lines  []string        `json:"lines"`
	Cursor editor.Position `json:"cursor"`
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	st, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Horizontal != nil {
		st.HorizontalDivider = *req.Horizontal
	}

	lreq, err := resolveRequest(req, st)
	if err != nil {
		observability.Blocks().OnGenerate(r.Context(), req.source(), 0, err)
		s.writeError(w, r, err)
		return
	}
	block, err := layout.GenerateRequest(lreq)
	observability.Blocks().OnGenerate(r.Context(), req.source(), lreq.Columns, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	line, ch := block.CursorOffset()
	writeJSON(w, http.StatusOK, BlockResponse{
		Text:   block.String(),
		Lines:  block.Lines,
		Cursor: editor.Position{Line: line, Ch: ch},
	})
}

// source names how the request chooses its shape.
func (req BlockRequest) source() string {
	switch {
	case req.Preset != "":
		return observability.SourcePreset
	case req.Custom != "":
		return observability.SourceCustom
	}
	return observability.SourceColumns
}

// resolveRequest turns an API request into a generation request, applying the
// horizontal divider setting and validating flags.
func resolveRequest(req BlockRequest, st settings.Settings) (layout.Request, error) {
	var out layout.Request
	switch {
	case req.Preset != "":
		p, err := layout.PresetByName(req.Preset)
		if err != nil {
			return layout.Request{}, err
		}
		out = p.Request(req.Flags...)
	case req.Custom != "":
		ratios, err := layout.ParseRatios(req.Custom)
		if err != nil {
			return layout.Request{}, err
		}
		out = layout.Request{Columns: len(ratios), Ratios: ratios, Flags: layout.NewFlags(req.Flags...)}
	default:
		out = layout.Request{Columns: req.Columns, Ratios: req.Ratios, Flags: layout.NewFlags(req.Flags...)}
	}

	out.Flags = st.MetadataFlags(out.Flags...)
	if err := out.Flags.Validate(); err != nil {
		return layout.Request{}, err
	}
	return out, nil
}

// PresetResponse is one localized preset.
type PresetResponse struct {
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Columns         int       `json:"columns"`
	Ratios          []float64 `json:"ratios,omitempty"`
	Flags           []string  `json:"flags,omitempty"`
	SeparatorBefore bool      `json:"separatorBefore,omitempty"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		st, err := s.store.Load(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		lang = st.Language
	}

	presets := layout.Presets()
	out := make([]PresetResponse, len(presets))
	for i, p := range presets {
		out[i] = PresetResponse{
			Name:            p.Name,
			Title:           i18n.Lookup(lang, p.Title),
			Columns:         p.Columns,
			Ratios:          p.Ratios,
			Flags:           p.Flags,
			SeparatorBefore: layout.SeparatorBefore(i),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// WidthResponse is the style for one column, or a null style when the
// metadata declares no usable width.
type WidthResponse struct {
	Style        *width.Style        `json:"style"`
	Declarations []width.Declaration `json:"declarations,omitempty"`
	CSS          string              `json:"css,omitempty"`
}

func (s *Server) handleWidth(w http.ResponseWriter, r *http.Request) {
	st, ok := width.StyleFor(r.URL.Query().Get("metadata"))
	if !ok {
		writeJSON(w, http.StatusOK, WidthResponse{})
		return
	}
	decls := st.Declarations()
	writeJSON(w, http.StatusOK, WidthResponse{Style: &st, Declarations: decls, CSS: width.FormatInline(decls)})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, err := htmldoc.Parse(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read HTML body"))
		return
	}
	st, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	start := time.Now()
	columns := len(doc.Columns())
	styled := width.Apply(doc)
	doc.StyleContainers(st.CSSVariables())
	observability.Render().OnRenderPass(r.Context(), columns, styled, time.Since(start))

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render HTML"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Columns-Styled", strconv.Itoa(styled))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	st := settings.Defaults()
	if err := decodeJSON(w, r, &st); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), st); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
