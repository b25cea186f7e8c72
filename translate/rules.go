package translate

import "fmt"

// AffixKind says which end of the source text a rule matches.
type AffixKind int

const (
	Prefix AffixKind = iota
	Suffix
)

func (k AffixKind) String() string {
	if k == Suffix {
		return "suffix"
	}
	return "prefix"
}

// Rule is one affix decomposition rule. When the source text starts (or
// ends) with Affix and something remains, the remainder is resolved and
// substituted for "{}" in Template.
type Rule struct {
	Kind  AffixKind
	Affix string
	// Template holds the English result with "{}" for the remainder.
	Template string
	// Lower lowercases the resolved remainder ("Select model").
	Lower bool
	// Strict leaves the text unresolved when the remainder cannot be
	// resolved, instead of substituting the raw remainder.
	Strict bool
	// Forms maps a resolved remainder to a complete result, for verbs
	// whose English form is irregular ("Load" -> "Failed to load").
	Forms map[string]string
}

// Particle splits a compound phrase on the first occurrence of Sep.
type Particle struct {
	Sep string
	// Template uses "{left}" and "{right}".
	Template string
	// Alt replaces Template when the right source segment is in AltRight.
	Alt      string
	AltRight map[string]bool
}

// DefaultRules is the affix rule table, in evaluation order.
var DefaultRules = []Rule{
	{Kind: Suffix, Affix: "失败", Template: "{} failed", Forms: verbForms("Failed to %s",
		"Load", "Save", "Delete", "Add", "Edit", "Update", "Create", "Import", "Export")},
	{Kind: Suffix, Affix: "成功", Template: "{} successful"},
	{Kind: Prefix, Affix: "加载", Template: "Load {}", Lower: true},
	{Kind: Prefix, Affix: "已", Template: "{}", Strict: true, Forms: map[string]string{
		"Archive": "Archived",
		"Delete":  "Deleted",
		"Add":     "Added",
		"Edit":    "Edited",
		"Save":    "Saved",
		"Load":    "Loaded",
		"Copy":    "Copied",
		"Export":  "Exported",
	}},
	{Kind: Suffix, Affix: "中", Template: "{} in progress", Forms: map[string]string{
		"Load":    "Loading",
		"Save":    "Saving",
		"Add":     "Adding",
		"Edit":    "Editing",
		"Create":  "Creating",
		"Export":  "Exporting",
		"Install": "Installing",
	}},
	{Kind: Prefix, Affix: "未", Template: "Not {}", Lower: true, Forms: map[string]string{
		"Use": "Unused",
	}},
	{Kind: Prefix, Affix: "请", Template: "Please {}", Lower: true},
	{Kind: Prefix, Affix: "暂无", Template: "No {}", Lower: true},
	{Kind: Suffix, Affix: "列表", Template: "{} list"},
	{Kind: Suffix, Affix: "设置", Template: "{} settings"},
	{Kind: Suffix, Affix: "模式", Template: "{} mode"},
	{Kind: Suffix, Affix: "类型", Template: "{} type"},
	{Kind: Suffix, Affix: "文件", Template: "{} file"},
	{Kind: Suffix, Affix: "选择器", Template: "{} selector"},
	{Kind: Suffix, Affix: "字段", Template: "{} field"},
	{Kind: Suffix, Affix: "路径", Template: "{} path"},
	{Kind: Prefix, Affix: "选择", Template: "Select {}", Lower: true},
	{Kind: Prefix, Affix: "打开", Template: "Open {}", Lower: true},
	{Kind: Suffix, Affix: "名称", Template: "{} name"},
	{Kind: Suffix, Affix: "信息", Template: "{} information"},
	{Kind: Suffix, Affix: "错误", Template: "{} error"},
	{Kind: Suffix, Affix: "包", Template: "{} package"},
	{Kind: Suffix, Affix: "目录", Template: "{} directory"},
	{Kind: Prefix, Affix: "启用", Template: "Enable {}", Lower: true},
	{Kind: Prefix, Affix: "禁用", Template: "Disable {}", Lower: true},
}

// genericNouns are right-hand segments of 的 that read better as "Y of X".
var genericNouns = map[string]bool{
	"值": true, "内容": true, "配置": true, "设置": true, "信息": true,
	"状态": true, "名称": true, "类型": true, "列表": true, "文件": true,
}

// DefaultParticles is the particle table, in evaluation order.
var DefaultParticles = []Particle{
	{Sep: "的", Template: "{left}'s {right}", Alt: "{right} of {left}", AltRight: genericNouns},
	{Sep: "和", Template: "{left} and {right}"},
	{Sep: "或", Template: "{left} or {right}"},
	{Sep: "后", Template: "{right} after {left}"},
	{Sep: "中", Template: "{right} in {left}"},
}

func verbForms(format string, verbs ...string) map[string]string {
	forms := make(map[string]string, len(verbs))
	for _, v := range verbs {
		forms[v] = fmt.Sprintf(format, lower(v))
	}
	return forms
}
