package classify

import "testing"

func TestIsPageMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"=== [Page 1/3] ===", true},
		{"=== anything ===", true},
		{"=== ===", true},
		{"== [Page 1/3] ==", false},
		{"=== [Page 1/3]", false},
		{"[Page 1/3] ===", false},
		{"======", false}, // no space after the prefix
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPageMarker([]rune(tt.input)); got != tt.expected {
			t.Errorf("IsPageMarker(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsVisualDivider(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"----------", true},
		{"* * *", true},
		{"★☆★", true},
		{"──────", true}, // box drawing
		{"~~~~", true},
		{"＊＊＊", true},
		{"_ _ _", true},
		{"--", false},     // under three significant glyphs
		{"   ", false},    // all whitespace
		{"-- a --", false}, // letter disqualifies
		{"第三章", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsVisualDivider([]rune(tt.input)); got != tt.expected {
			t.Errorf("IsVisualDivider(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsIndented(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"  正文开始", true},
		{"　　正文开始", true},
		{" \t正文开始", true},
		{" 正文开始", false},
		{"正文开始", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsIndented([]rune(tt.input)); got != tt.expected {
			t.Errorf("IsIndented(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsTitleHeading(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"chapter with suffix", "第十章 终章", true},
		{"chapter number", "第1章", true},
		{"volume", "第三卷", true},
		{"hui marker", "第五回", true},
		{"prefix before di", "卷一 第三章", true},
		{"fixed word foreword", "前言", true},
		{"fixed word prologue", "序章", true},
		{"fixed word wedge", "楔子", true},
		{"extra with suffix", "番外 短篇故事", true},
		{"bare juan with numeral", "卷一", true},
		{"bare zhang with numeral", "章三", true},
		{"comma rejects", "今天天气很好，", false},
		{"comma rejects heading too", "第三章，回家", false},
		{"excluded follower", "第三章的故事", false},
		{"marker too far", "第一二三四五六章", false},
		{"plain prose", "他们走了很远的路", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		if got := IsTitleHeading([]rune(tt.input)); got != tt.expected {
			t.Errorf("%s: IsTitleHeading(%q) = %v, want %v", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestIsTitleHeadingLengthCap(t *testing.T) {
	long := "第三章"
	for len([]rune(long)) <= 50 {
		long += "很"
	}
	if IsTitleHeading([]rune(long)) {
		t.Error("titles over 50 runes must be rejected")
	}
}

func TestIsHeadingLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"short cjk", "人物介绍", true},
		{"item title colon", "物品准备：", true},
		{"bracket wrapped", "【番外】", true},
		{"pure digits", "12", true},
		{"ascii heading", "Prologue", true},
		{"page number", "007", true},
		{"ends with comma", "今天天气，", false},
		{"contains comma", "今天，明天", false},
		{"ends with strong punctuation", "走吧！", false},
		{"contains strong punctuation", "走吧！好", false},
		{"unclosed bracket", "（未完", false},
		{"too long cjk", "这是一个超过八个字的句子", false},
		{"mixed gets longer cap", "第3章 Chapter", true},
		{"page marker excluded", "=== [Page 1/3] ===", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		if got := IsHeadingLike([]rune(tt.input)); got != tt.expected {
			t.Errorf("%s: IsHeadingLike(%q) = %v, want %v", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestIsChapterEnding(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"第三章", true},
		{"第三章》", true},
		{"见第五回】", true},
		{"第三章的内容很长而且超过十五个字了吧", false},
		{"普通句子", false},
		{"》】", false}, // only brackets
		{"", false},
	}

	for _, tt := range tests {
		if got := IsChapterEnding([]rune(tt.input)); got != tt.expected {
			t.Errorf("IsChapterEnding(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsMetadataLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"title full-width colon", "書名：假面遊戲", true},
		{"author spaced ascii colon", "作者 : 東野圭吾", true},
		{"ideographic space separator", "出版時間　2024-03-12", true},
		{"isbn", "ISBN：9787573506078", true},
		{"simplified key", "书名：长夜难明", true},
		{"unknown key", "封面：某人", false},
		{"no separator", "書名假面遊戲", false},
		{"separator too far", "这一行的分隔符在第十一个字符之后：值", false},
		{"empty value", "作者：", false},
		{"dialogue value", "作者：「某人」", false},
		{"too long", "書名：这个书名实在是太长太长太长太长太长太长太长太长太长太长太长了", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		if got := IsMetadataLine([]rune(tt.input)); got != tt.expected {
			t.Errorf("%s: IsMetadataLine(%q) = %v, want %v", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestIsMetadataKey(t *testing.T) {
	for _, key := range []string{"書名", "书名", "作者", "ISBN", "OCR", "定價", "简介"} {
		if !IsMetadataKey([]rune(key)) {
			t.Errorf("IsMetadataKey(%q) = false, want true", key)
		}
	}
	if IsMetadataKey([]rune("封面")) {
		t.Error("unknown key accepted")
	}
}
