package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/observability"
	"github.com/matzehuels/multicolumn/pkg/settings"
)

func newTestServer(t *testing.T, st settings.Settings) (*httptest.Server, *settings.MemoryStore) {
	t.Helper()
	store := settings.NewMemoryStore(st)
	srv := httptest.NewServer(New(store, log.New(io.Discard)).Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		req        BlockRequest
		wantFirst  string
		wantLines  int
	}{
		{"columns", false, BlockRequest{Columns: 2}, "> [!multi-column]", 7},
		{"preset", false, BlockRequest{Preset: "three-divider"}, "> [!multi-column|bordered]", 10},
		{"custom", false, BlockRequest{Custom: "30/70", Flags: []string{"bordered"}}, "> [!multi-column|bordered]", 7},
		{"horizontal setting", true, BlockRequest{Columns: 1}, "> [!multi-column|horizontal]", 4},
		{"horizontal override", true, BlockRequest{Columns: 1, Horizontal: new(bool)}, "> [!multi-column]", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := settings.Defaults()
			st.HorizontalDivider = tt.horizontal
			srv, _ := newTestServer(t, st)

			resp := postJSON(t, srv.URL+"/v1/blocks", tt.req)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			got := decode[BlockResponse](t, resp)
			if len(got.Lines) != tt.wantLines || got.Lines[0] != tt.wantFirst {
				t.Errorf("lines = %q", got.Lines)
			}
			if !strings.HasSuffix(got.Text, "\n") {
				t.Error("text must end with a newline")
			}
			if got.Cursor.Line != 3 || got.Cursor.Ch != 3 {
				t.Errorf("cursor = %+v", got.Cursor)
			}
		})
	}
}

func TestBlocksErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode errors.Code
	}{
		{"zero columns", `{"columns": 0}`, errors.ErrCodeInvalidColumnCount},
		{"too many columns", `{"columns": 1000000000}`, errors.ErrCodeInvalidColumnCount},
		{"too many custom columns", `{"custom": "` + strings.Repeat("1/", 99) + `1"}`, errors.ErrCodeInvalidColumnCount},
		{"bad sum", `{"custom": "30/50"}`, errors.ErrCodeMalformedRatioInput},
		{"unknown preset", `{"preset": "nine"}`, errors.ErrCodeInvalidPreset},
		{"bad flag", `{"columns": 2, "flags": ["a|b"]}`, errors.ErrCodeInvalidFlag},
		{"bad json", `{"columns":`, errors.ErrCodeInvalidInput},
		{"unknown field", `{"cols": 2}`, errors.ErrCodeInvalidInput},
	}

	srv, _ := newTestServer(t, settings.Defaults())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/blocks", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			got := decode[errorResponse](t, resp)
			if got.Code != tt.wantCode {
				t.Errorf("code = %s, want %s (%s)", got.Code, tt.wantCode, got.Message)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	srv, _ := newTestServer(t, settings.Defaults())

	resp, err := http.Get(srv.URL + "/v1/presets?lang=zh-CN")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	got := decode[[]PresetResponse](t, resp)
	if len(got) != 5 {
		t.Fatalf("got %d presets", len(got))
	}
	if got[0].Title != "两栏 (50/50)" {
		t.Errorf("title = %q", got[0].Title)
	}
	if !got[3].SeparatorBefore {
		t.Error("divider presets should start after a separator")
	}
}

func TestPresetsUseStoredLanguage(t *testing.T) {
	st := settings.Defaults()
	st.Language = "de"
	srv, _ := newTestServer(t, st)

	resp, err := http.Get(srv.URL + "/v1/presets")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	got := decode[[]PresetResponse](t, resp)
	if got[0].Title != "2 Spalten (50/50)" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestWidth(t *testing.T) {
	srv, _ := newTestServer(t, settings.Defaults())

	tests := []struct {
		metadata string
		want     int
	}{
		{"50", 50},
		{"0", 0},
		{"150", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.metadata, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/v1/width?metadata=" + tt.metadata)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			got := decode[WidthResponse](t, resp)
			if tt.want == 0 {
				if got.Style != nil {
					t.Errorf("style = %+v, want null", got.Style)
				}
				return
			}
			if got.Style == nil || got.Style.FlexBasisPercent != tt.want {
				t.Errorf("style = %+v, want %d", got.Style, tt.want)
			}
			if got.CSS != "flex: 0 0 50%; min-width: 0" {
				t.Errorf("css = %q", got.CSS)
			}
		})
	}
}

func TestRender(t *testing.T) {
	srv, _ := newTestServer(t, settings.Defaults())

	body := `<div class="callout" data-callout="multi-column">` +
		`<div class="callout" data-callout="col" data-callout-metadata="30"></div>` +
		`<div class="callout" data-callout="col" data-callout-metadata="70"></div></div>`
	resp, err := http.Post(srv.URL+"/v1/render", "text/html", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Columns-Styled"); got != "2" {
		t.Errorf("X-Columns-Styled = %q", got)
	}
	out, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"flex: 0 0 30%", "flex: 0 0 70%", "--multi-column-divider-width: 1px"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	srv, store := newTestServer(t, settings.Defaults())

	body := `{"language":"zh","horizontalDivider":true,"dividerWidth":2,"dividerStyle":"dashed","dividerColor":"#999"}`
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/v1/settings", strings.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	st, _ := store.Load(context.Background())
	if st.Language != "zh" || !st.HorizontalDivider || st.DividerStyle != "dashed" {
		t.Errorf("stored settings = %+v", st)
	}

	bad, _ := http.NewRequest(http.MethodPut, srv.URL+"/v1/settings", strings.NewReader(`{"dividerStyle":"wavy"}`))
	resp, err = http.DefaultClient.Do(bad)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, settings.Defaults())
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Server"), "multicolumn/") {
		t.Errorf("Server header = %q", resp.Header.Get("Server"))
	}
}

type recordingHooks struct {
	observability.NoopBlockHooks
	observability.NoopRenderHooks
	observability.NoopHTTPHooks

	mu        sync.Mutex
	generated []string
	passes    [][2]int
	responses []int
}

func (h *recordingHooks) OnGenerate(_ context.Context, source string, columns int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generated = append(h.generated, fmt.Sprintf("%s:%d:%v", source, columns, err == nil))
}

func (h *recordingHooks) OnRenderPass(_ context.Context, columns, styled int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.passes = append(h.passes, [2]int{columns, styled})
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetBlockHooks(hooks)
	observability.SetRenderHooks(hooks)
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	srv, _ := newTestServer(t, settings.Defaults())
	postJSON(t, srv.URL+"/v1/blocks", BlockRequest{Preset: "three"})
	postJSON(t, srv.URL+"/v1/blocks", BlockRequest{Custom: "10/10"})

	body := `<div class="callout" data-callout="col" data-callout-metadata="40"></div>` +
		`<div class="callout" data-callout="col" data-callout-metadata="wide"></div>`
	resp, err := http.Post(srv.URL+"/v1/render", "text/html", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if want := []string{"preset:3:true", "custom:0:false"}; !reflect.DeepEqual(hooks.generated, want) {
		t.Errorf("generated = %v, want %v", hooks.generated, want)
	}
	if want := [][2]int{{2, 1}}; !reflect.DeepEqual(hooks.passes, want) {
		t.Errorf("render passes = %v, want %v", hooks.passes, want)
	}
	if want := []int{200, 400, 200}; !reflect.DeepEqual(hooks.responses, want) {
		t.Errorf("responses = %v, want %v", hooks.responses, want)
	}
}
