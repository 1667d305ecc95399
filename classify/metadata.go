package classify

import "github.com/zhtext/reflow/punct"

// Metadata separators: full-width colon, ASCII colon, ideographic space.
const metadataSeparators = "：:　"

const (
	metadataMaxLen = 30
	metadataSepMax = 10
)

// metadataKeys is the closed set of recognized front-matter keys, in
// traditional and simplified forms.
var metadataKeys = map[string]struct{}{}

func init() {
	for _, k := range []string{
		// Title / author / publishing
		"書名", "书名",
		"作者",
		"譯者", "译者",
		"校訂", "校订",
		"出版社",
		"出版時間", "出版时间",
		"出版日期",

		// Copyright / license
		"版權", "版权",
		"版權頁", "版权页",
		"版權信息", "版权信息",

		// Editors / pricing
		"責任編輯", "责任编辑",
		"編輯", "编辑",
		"責編", "责编",
		"定價", "定价",

		// Descriptions / forewords
		"簡介", "简介",
		"前言",
		"序章",
		"終章", "终章",
		"尾聲", "尾声",
		"後記", "后记",

		// Digital publishing
		"品牌方",
		"出品方",
		"授權方", "授权方",
		"電子版權", "数字版权",
		"掃描", "扫描",
		"OCR",

		// CIP / cataloging
		"CIP",
		"在版編目", "在版编目",
		"分類號", "分类号",
		"主題詞", "主题词",
		"類型", "类型",
		"系列",

		// Publishing cycle
		"發行日", "发行日",
		"初版",

		"ISBN",
	} {
		metadataKeys[k] = struct{}{}
	}
}

// IsMetadataKey reports whether key is in the recognized metadata key set.
func IsMetadataKey(key []rune) bool {
	_, ok := metadataKeys[string(key)]
	return ok
}

// IsMetadataLine reports whether s is a book front-matter line such as
// "書名：假面遊戲", "作者 : 東野圭吾" or "ISBN　9787573506078".
//
// The line must be at most 30 runes, with a recognized separator within
// the first 10, whose left-hand key exactly matches the metadata key set
// and whose value does not begin with a dialogue opener.
func IsMetadataLine(line []rune) bool {
	s := trimmed(line)
	if len(s) == 0 || len(s) > metadataMaxLen {
		return false
	}

	sep := -1
	for i, r := range s {
		if !contains(metadataSeparators, r) {
			continue
		}
		if i == 0 || i > metadataSepMax {
			return false
		}
		sep = i
		break
	}
	if sep < 0 {
		return false
	}

	key := trimmed(s[:sep])
	if len(key) == 0 || !IsMetadataKey(key) {
		return false
	}

	// Skip spaces after the separator; an empty value is not metadata.
	j := sep + 1
	for j < len(s) {
		r := s[j]
		if r == ' ' || r == '\t' || r == '\r' || r == 0x3000 {
			j++
			continue
		}
		break
	}
	if j >= len(s) {
		return false
	}

	return !punct.IsDialogOpener(s[j])
}
