package mdhelpers

import "text/template"

// FuncInfo describes a template function registered by FuncMap.
type FuncInfo struct {
	Name      string `json:"name" yaml:"name"`
	Signature string `json:"signature" yaml:"signature"`
	Summary   string `json:"summary" yaml:"summary"`
	Example   string `json:"example" yaml:"example"`
}

var funcInfos = []FuncInfo{
	{
		Name:      "ordinalize",
		Signature: "ordinalize NUMBER",
		Summary:   "English ordinal of an integer",
		Example:   `{{ 21 | ordinalize }} → 21st`,
	},
	{
		Name:      "user_link",
		Signature: "user_link USERNAME",
		Summary:   "markdown link to a GitHub profile",
		Example:   `{{ "octocat" | user_link }} → [@octocat](https://github.com/octocat)`,
	},
	{
		Name:      "userLink",
		Signature: "userLink USERNAME",
		Summary:   "alias of user_link",
		Example:   `{{ userLink "octocat" }}`,
	},
	{
		Name:      "beautify_desc",
		Signature: "beautify_desc TEXT",
		Summary:   `replace each newline with ", "`,
		Example:   `{{ .description | beautify_desc }}`,
	},
	{
		Name:      "beautifyDescription",
		Signature: "beautifyDescription TEXT",
		Summary:   "alias of beautify_desc",
		Example:   `{{ beautifyDescription .description }}`,
	},
	{
		Name:      "truncate_desc",
		Signature: "truncate_desc TEXT",
		Summary:   "beautify_desc, then cut to the truncate limit with ...",
		Example:   `{{ .description | truncate_desc }}`,
	},
}

// Funcs describes the functions FuncMap registers, in display order.
func Funcs() []FuncInfo {
	out := make([]FuncInfo, len(funcInfos))
	copy(out, funcInfos)
	return out
}

// FuncMap returns the default helpers as template functions.
func FuncMap() template.FuncMap {
	return defaultHelpers.FuncMap()
}

// FuncMap returns the helpers as template functions. Each function checks
// its argument type and fails the template execution on a mismatch.
func (h *Helpers) FuncMap() template.FuncMap {
	return template.FuncMap{
		"ordinalize":          h.OrdinalizeValue,
		"user_link":           h.UserLinkValue,
		"userLink":            h.UserLinkValue,
		"beautify_desc":       h.BeautifyDescriptionValue,
		"beautifyDescription": h.BeautifyDescriptionValue,
		"truncate_desc":       h.TruncateDescriptionValue,
	}
}
