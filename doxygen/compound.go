package doxygen

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/doxyrst"
)

// Ensure service implements interface.
var _ doxyrst.CompoundExtractor = (*Extractor)(nil)

// Extractor reads compound summaries out of doxygen XML files.
type Extractor struct{}

// NewExtractor returns a new instance of Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractCompoundInfos reads every compounddef element in the doxygen XML
// file at path.
func (e *Extractor) ExtractCompoundInfos(path string) ([]*doxyrst.CompoundInfo, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, doxyrst.Errorf(doxyrst.EINVALID, "no root element in %s", path)
	}

	var infos []*doxyrst.CompoundInfo
	for _, el := range root.SelectElements("compounddef") {
		info, err := ExtractCompoundInfo(el)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ExtractCompoundInfo reads the name, kind and brief description of one
// compounddef element. Doxygen writes exactly one compoundname and one
// briefdescription per compound; any other shape means the XML is malformed
// and extraction fails outright.
//
// The brief description is the flattened text of the first para child, with
// embedded newlines indented by four spaces so the text nests inside a
// docstring block, and with inline math normalized. A briefdescription
// without a para child yields an empty description.
func ExtractCompoundInfo(el *etree.Element) (*doxyrst.CompoundInfo, error) {
	kind := el.SelectAttr("kind")
	if kind == nil {
		return nil, doxyrst.Errorf(doxyrst.EINVALID, "compound element missing kind attribute")
	}

	names := el.SelectElements("compoundname")
	if len(names) != 1 {
		return nil, doxyrst.Errorf(doxyrst.EINVALID, "compound element has %d compoundname children, want 1", len(names))
	}
	descrs := el.SelectElements("briefdescription")
	if len(descrs) != 1 {
		return nil, doxyrst.Errorf(doxyrst.EINVALID, "compound element has %d briefdescription children, want 1", len(descrs))
	}

	brief := ""
	if para := descrs[0].SelectElement("para"); para != nil {
		brief = flattenText(para)
		brief = strings.ReplaceAll(brief, "\n", "\n    ")
		brief = doxyrst.ReplaceInlineMath(brief)
	}

	return &doxyrst.CompoundInfo{
		Name:  names[0].Text(),
		Kind:  kind.Value,
		Brief: brief,
	}, nil
}

// flattenText serializes the text content of el and all its descendants,
// dropping the markup.
func flattenText(el *etree.Element) string {
	var b strings.Builder
	collectText(el, &b)
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.CharData:
			b.WriteString(c.Data)
		case *etree.Element:
			collectText(c, b)
		}
	}
}
