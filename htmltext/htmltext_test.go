package htmltext

import (
	"reflect"
	"strings"
	"testing"
)

func TestOpenReaderBlocks(t *testing.T) {
	const doc = `<html><head><title>第十章</title></head><body>
<h1>第十章 终章</h1>
<p>今天天气很好，<b>我们</b></p>
<p>去公园散步。</p>
</body></html>`

	src, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	if got := src.Title(); got != "第十章" {
		t.Errorf("Title = %q, want %q", got, "第十章")
	}

	want := []string{"第十章 终章", "今天天气很好，我们", "去公园散步。"}
	if got := src.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestOpenReaderBreaksAndSkips(t *testing.T) {
	const doc = `<html><body>
<script>var x = 1;</script>
<style>p { color: red; }</style>
<div>第一行<br>第二行</div>
</body></html>`

	src, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	want := []string{"第一行", "第二行"}
	if got := src.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestOpenReaderInlineMarkupDissolves(t *testing.T) {
	const doc = `<p>他<em>轻轻</em>地说：<span>「走吧。」</span></p>`

	src, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	want := []string{"他轻轻地说：「走吧。」"}
	if got := src.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestSourceText(t *testing.T) {
	const doc = `<body><p>第一段。</p><p>第二段。</p></body>`

	src, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	if got := src.Text(); got != "第一段。\n第二段。" {
		t.Errorf("Text = %q", got)
	}
}

func TestSourcePageContract(t *testing.T) {
	src, err := OpenReader(strings.NewReader(`<p>内容在这里。</p>`))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	if got := src.PageCount(); got != 1 {
		t.Errorf("PageCount = %d, want 1", got)
	}
	text, err := src.PageText(0)
	if err != nil {
		t.Fatalf("PageText(0) returned error: %v", err)
	}
	if text != "内容在这里。" {
		t.Errorf("PageText(0) = %q", text)
	}
	if _, err := src.PageText(1); err == nil {
		t.Error("out-of-range index should return an error")
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestSourceEmptyDocument(t *testing.T) {
	src, err := OpenReader(strings.NewReader(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("OpenReader returned error: %v", err)
	}

	if got := src.PageCount(); got != 0 {
		t.Errorf("PageCount = %d, want 0", got)
	}
	if _, err := src.PageText(0); err == nil {
		t.Error("PageText on an empty document should return an error")
	}
}

func TestSourceNil(t *testing.T) {
	var src *Source

	if got := src.Title(); got != "" {
		t.Errorf("nil Title = %q", got)
	}
	if got := src.Lines(); got != nil {
		t.Errorf("nil Lines = %v", got)
	}
	if got := src.Text(); got != "" {
		t.Errorf("nil Text = %q", got)
	}
	if got := src.PageCount(); got != 0 {
		t.Errorf("nil PageCount = %d", got)
	}
}
