package parser

import "testing"

func TestScanLine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		inBlock bool
		want    lineRecord
	}{
		{name: "blank", raw: "   ", want: lineRecord{indent: 3, kind: lineBlank}},
		{name: "comment", raw: "  # note", want: lineRecord{indent: 2, kind: lineComment}},
		{name: "comment at start", raw: "# note", want: lineRecord{kind: lineComment}},
		{name: "key value", raw: "  name: council # trailing", want: lineRecord{indent: 2, kind: lineKeyValue, key: "name", value: "council"}},
		{name: "empty value", raw: "parent:", want: lineRecord{kind: lineKeyValue, key: "parent"}},
		{name: "quoted hash", raw: `v: "a # b"`, want: lineRecord{kind: lineKeyValue, key: "v", value: `"a # b"`}},
		{name: "list item", raw: "    - item", want: lineRecord{indent: 4, kind: lineListItem, content: "item", inner: 6}},
		{name: "bare dash", raw: "  -", want: lineRecord{indent: 2, kind: lineListItem, inner: 3}},
		{name: "list mapping", raw: "  -   id: a", want: lineRecord{indent: 2, kind: lineListItem, content: "id: a", inner: 6}},
		{name: "negative number is not a list", raw: "-5", want: lineRecord{kind: linePlain, content: "-5"}},
		{name: "plain", raw: "words only", want: lineRecord{kind: linePlain, content: "words only"}},
		{name: "colon without space", raw: "a:b", want: lineRecord{kind: lineKeyValue, key: "a", value: "b"}},
		{name: "tab is content", raw: "\tkey: v", want: lineRecord{kind: lineKeyValue, key: "key", value: "v"}},
		{name: "block text", raw: "    text # kept  ", inBlock: true, want: lineRecord{indent: 4, kind: lineBlockContinuation, content: "    text # kept"}},
		{name: "block blank", raw: "", inBlock: true, want: lineRecord{kind: lineBlank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.num = 7
			got := scanLine(tt.raw, 7, tt.inBlock)
			if got != tt.want {
				t.Errorf("scanLine(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a: 1 # c", "a: 1 "},
		{"# full", ""},
		{"a: b#c", "a: b#c"},
		{`a: "x # y" # z`, `a: "x # y" `},
		{`a: 'x # y'`, `a: 'x # y'`},
		{`a: "esc \" # still quoted"`, `a: "esc \" # still quoted"`},
		{"a: 1\t# tab", "a: 1\t"},
		{"a: it's # c", "a: it's "},
	}
	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitKeyValue(t *testing.T) {
	tests := []struct {
		in        string
		key, val  string
		wantFound bool
	}{
		{"a: 1", "a", "1", true},
		{"a:", "a", "", true},
		{"url: http://x:80", "url", "http://x:80", true},
		{"http://x", "http", "//x", true},
		{"a:b", "a", "b", true},
		{"it's: x", "it's", "x", true},
		{`"k: v"`, "", "", false},
		{`"k:1": v`, "k:1", "v", true},
		{"{a: 1}", "", "", false},
		{"[a: 1]", "", "", false},
		{"key:\tvalue", "key", "value", true},
	}
	for _, tt := range tests {
		key, val, ok := splitKeyValue(tt.in)
		if ok != tt.wantFound || key != tt.key || val != tt.val {
			t.Errorf("splitKeyValue(%q) = %q, %q, %v; want %q, %q, %v",
				tt.in, key, val, ok, tt.key, tt.val, tt.wantFound)
		}
	}
}
