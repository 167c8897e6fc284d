// Package i18n holds the user-facing strings of multicolumn.
//
// Strings are looked up by (language, key). Tables are immutable and English
// is the default language: every key resolves in English, and any language or
// key that is missing elsewhere falls back to it. Templates use positional
// placeholders ({0}, {1}, ...) filled by [Format].
package i18n

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Key identifies a localized string.
type Key string

// Localized string keys.
const (
	KeyMenuTitle           Key = "menu.title"
	KeyPresetTwo           Key = "preset.two"
	KeyPresetSidebarLeft   Key = "preset.sidebar-left"
	KeyPresetThree         Key = "preset.three"
	KeyPresetTwoDivider    Key = "preset.two-divider"
	KeyPresetThreeDivider  Key = "preset.three-divider"
	KeyPresetCustom        Key = "preset.custom"
	KeyCustomPrompt        Key = "custom.prompt"
	KeyCustomPlaceholder   Key = "custom.placeholder"
	KeyCustomSubmit        Key = "custom.submit"
	KeyNoticeNoEditor      Key = "notice.no-editor"
	KeyNoticeInserted      Key = "notice.inserted"
	KeyErrorRatioSum       Key = "error.ratio-sum"
	KeyErrorRatioFormat    Key = "error.ratio-format"
	KeySettingLanguage     Key = "setting.language"
	KeySettingHorizontal   Key = "setting.horizontal"
	KeySettingDividerWidth Key = "setting.divider-width"
	KeySettingDividerStyle Key = "setting.divider-style"
	KeySettingDividerColor Key = "setting.divider-color"
	KeyPickerHelp          Key = "picker.help"
	KeyPickerCustomHelp    Key = "picker.custom-help"
)

// Default is the language every key is guaranteed to resolve in.
var Default = language.English

var tables = map[language.Tag]map[Key]string{
	language.English: {
		KeyMenuTitle:           "Insert Multi-Column",
		KeyPresetTwo:           "2 Columns (50/50)",
		KeyPresetSidebarLeft:   "Sidebar Left (30/70)",
		KeyPresetThree:         "3 Columns (33/34/33)",
		KeyPresetTwoDivider:    "2 Columns + Divider",
		KeyPresetThreeDivider:  "3 Columns + Divider",
		KeyPresetCustom:        "Custom Ratio...",
		KeyCustomPrompt:        "Enter column ratios separated by /",
		KeyCustomPlaceholder:   "e.g. 30/70 or 25/50/25",
		KeyCustomSubmit:        "Insert",
		KeyNoticeNoEditor:      "No active editor found",
		KeyNoticeInserted:      "Inserted {0} columns at line {1}",
		KeyErrorRatioSum:       "Ratios must add up to 100 (got {0})",
		KeyErrorRatioFormat:    "Ratios must be whole numbers separated by /",
		KeySettingLanguage:     "Language",
		KeySettingHorizontal:   "Horizontal divider",
		KeySettingDividerWidth: "Divider width (px)",
		KeySettingDividerStyle: "Divider style",
		KeySettingDividerColor: "Divider color",
		KeyPickerHelp:          "↑/↓ navigate  ⏎ select  q quit",
		KeyPickerCustomHelp:    "⏎ insert  esc back",
	},
	language.Chinese: {
		KeyMenuTitle:           "插入多栏布局",
		KeyPresetTwo:           "两栏 (50/50)",
		KeyPresetSidebarLeft:   "左侧边栏 (30/70)",
		KeyPresetThree:         "三栏 (33/34/33)",
		KeyPresetTwoDivider:    "两栏 + 分隔线",
		KeyPresetThreeDivider:  "三栏 + 分隔线",
		KeyPresetCustom:        "自定义比例...",
		KeyCustomPrompt:        "输入各栏比例，用 / 分隔",
		KeyCustomPlaceholder:   "例如 30/70 或 25/50/25",
		KeyCustomSubmit:        "插入",
		KeyNoticeNoEditor:      "未找到活动的编辑器",
		KeyNoticeInserted:      "已在第 {1} 行插入 {0} 栏",
		KeyErrorRatioSum:       "比例之和必须为 100（当前为 {0}）",
		KeyErrorRatioFormat:    "比例必须是用 / 分隔的整数",
		KeySettingLanguage:     "语言",
		KeySettingHorizontal:   "水平分隔线",
		KeySettingDividerWidth: "分隔线宽度 (px)",
		KeySettingDividerStyle: "分隔线样式",
		KeySettingDividerColor: "分隔线颜色",
	},
	language.German: {
		KeyMenuTitle:          "Mehrspaltig einfügen",
		KeyPresetTwo:          "2 Spalten (50/50)",
		KeyPresetSidebarLeft:  "Seitenleiste links (30/70)",
		KeyPresetThree:        "3 Spalten (33/34/33)",
		KeyPresetTwoDivider:   "2 Spalten + Trennlinie",
		KeyPresetThreeDivider: "3 Spalten + Trennlinie",
		KeyPresetCustom:       "Eigenes Verhältnis...",
		KeyCustomPrompt:       "Spaltenverhältnisse durch / getrennt eingeben",
		KeyNoticeNoEditor:     "Kein aktiver Editor gefunden",
		KeyNoticeInserted:     "{0} Spalten in Zeile {1} eingefügt",
		KeyErrorRatioSum:      "Die Verhältnisse müssen 100 ergeben (ist {0})",
		KeySettingLanguage:    "Sprache",
	},
}

// supported lists the table languages with the default first, so unmatched
// languages resolve to it.
var supported = []language.Tag{language.English, language.Chinese, language.German}

var matcher = language.NewMatcher(supported)

// Languages returns the supported languages, default first.
func Languages() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match resolves a language name such as "zh-CN" or "de" to a supported
// language. Unknown or unparseable names resolve to [Default].
func Match(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Lookup returns the template for key in lang, falling back to [Default].
// Unknown keys return the key itself so a missing string is visible but
// never fatal.
func Lookup(lang string, key Key) string {
	if s, ok := tables[Match(lang)][key]; ok {
		return s
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return string(key)
}

// Format looks up key and substitutes positional placeholders with args.
func Format(lang string, key Key, args ...any) string {
	s := Lookup(lang, key)
	for i, a := range args {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return s
}

// Keys returns every key known to the default language, sorted.
func Keys() []Key {
	keys := make([]Key, 0, len(tables[Default]))
	for k := range tables[Default] {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
