package extract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPageMarker(t *testing.T) {
	tests := []struct {
		index, count int
		expected     string
	}{
		{0, 3, "=== [Page 1/3] ==="},
		{2, 3, "=== [Page 3/3] ==="},
		{0, 1, "=== [Page 1/1] ==="},
	}

	for _, tt := range tests {
		if got := PageMarker(tt.index, tt.count); got != tt.expected {
			t.Errorf("PageMarker(%d, %d) = %q, want %q", tt.index, tt.count, got, tt.expected)
		}
	}
}

func TestTextAssemblesPages(t *testing.T) {
	src := FromString("第一页的内容。\f第二页的内容。")

	result, err := Text(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	want := "第一页的内容。\n\n第二页的内容。\n\n"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
	if result.Cancelled {
		t.Error("Cancelled should be false")
	}
}

func TestTextWithPageHeaders(t *testing.T) {
	src := FromString("第一页的内容。\f第二页的内容。")

	result, err := Text(context.Background(), src, Options{PageHeaders: true})
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	want := "=== [Page 1/2] ===\n\n第一页的内容。\n\n" +
		"=== [Page 2/2] ===\n\n第二页的内容。\n\n"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
}

func TestTextTrimsAndNormalizesPages(t *testing.T) {
	src := FromString("  第一行，\r\n第二行。  \f")

	result, err := Text(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	want := "第一行，\n第二行。\n\n\n\n"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
}

func TestTextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := FromString("第一页。\f第二页。")
	result, err := Text(ctx, src, Options{})
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if !result.Cancelled {
		t.Error("Cancelled should be true for a done context")
	}
	if result.Text != "" {
		t.Errorf("no pages should be extracted, got %q", result.Text)
	}
}

type failingSource struct {
	pages []string
	fail  int
}

func (s *failingSource) PageCount() int { return len(s.pages) }

func (s *failingSource) PageText(index int) (string, error) {
	if index == s.fail {
		return "", errors.New("backend failure")
	}
	return s.pages[index], nil
}

func (s *failingSource) Close() error { return nil }

func TestTextPageError(t *testing.T) {
	src := &failingSource{pages: []string{"第一页。", "第二页。"}, fail: 1}

	result, err := Text(context.Background(), src, Options{})
	if err == nil {
		t.Fatal("expected an error from the failing page")
	}
	if !strings.Contains(err.Error(), "page 2") {
		t.Errorf("error should name the failing page, got %v", err)
	}
	if result.Text != "第一页。\n\n" {
		t.Errorf("partial text = %q", result.Text)
	}
}

func TestTextProgress(t *testing.T) {
	src := FromString("一\f二\f三\f四")

	var percents []int
	var lastBar string
	opts := Options{
		Progress: func(pageIndex, pageCount, percent int, bar string) {
			if pageCount != 4 {
				t.Errorf("pageCount = %d, want 4", pageCount)
			}
			percents = append(percents, percent)
			lastBar = bar
		},
	}

	if _, err := Text(context.Background(), src, opts); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}

	want := []int{25, 50, 75, 100}
	if len(percents) != len(want) {
		t.Fatalf("progress calls = %v, want %v", percents, want)
	}
	for i := range want {
		if percents[i] != want[i] {
			t.Errorf("percent[%d] = %d, want %d", i, percents[i], want[i])
		}
	}
	if lastBar != strings.Repeat("🟩", 10) {
		t.Errorf("final bar = %q", lastBar)
	}
}

func TestTextEmptySource(t *testing.T) {
	var src *FileSource

	result, err := Text(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if result.Text != "" || result.Cancelled {
		t.Errorf("empty source should yield an empty result, got %+v", result)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent, width int
		expected       string
	}{
		{0, 4, "⬜⬜⬜⬜"},
		{50, 4, "🟩🟩⬜⬜"},
		{100, 4, "🟩🟩🟩🟩"},
		{25, 10, "🟩🟩⬜⬜⬜⬜⬜⬜⬜⬜"},
		{-5, 2, "⬜⬜"},
		{150, 2, "🟩🟩"},
		{50, 0, ""},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.percent, tt.width); got != tt.expected {
			t.Errorf("ProgressBar(%d, %d) = %q, want %q", tt.percent, tt.width, got, tt.expected)
		}
	}
}

func TestFileSourcePages(t *testing.T) {
	src := FromString("第一页\f第二页\f第三页")

	if got := src.PageCount(); got != 3 {
		t.Errorf("PageCount = %d, want 3", got)
	}

	text, err := src.PageText(1)
	if err != nil {
		t.Fatalf("PageText(1) returned error: %v", err)
	}
	if text != "第二页" {
		t.Errorf("PageText(1) = %q", text)
	}

	if _, err := src.PageText(3); err == nil {
		t.Error("out-of-range index should return an error")
	}
	if _, err := src.PageText(-1); err == nil {
		t.Error("negative index should return an error")
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestFileSourceNil(t *testing.T) {
	var src *FileSource

	if got := src.PageCount(); got != 0 {
		t.Errorf("nil PageCount = %d, want 0", got)
	}
	if _, err := src.PageText(0); err == nil {
		t.Error("nil PageText should return an error")
	}
}

func TestOpenReaderDecoding(t *testing.T) {
	const text = "今天天气很好。"

	tests := []struct {
		name string
		data []byte
	}{
		{"plain utf-8", []byte(text)},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...)},
		{"utf-16le bom", utf16LE(text)},
		{"utf-16be bom", utf16BE(text)},
	}

	for _, tt := range tests {
		src, err := OpenReader(bytes.NewReader(tt.data))
		if err != nil {
			t.Errorf("%s: OpenReader returned error: %v", tt.name, err)
			continue
		}
		got, err := src.PageText(0)
		if err != nil {
			t.Errorf("%s: PageText returned error: %v", tt.name, err)
			continue
		}
		if got != text {
			t.Errorf("%s: decoded %q, want %q", tt.name, got, text)
		}
	}
}

func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func utf16BE(s string) []byte {
	out := []byte{0xFE, 0xFF}
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}
