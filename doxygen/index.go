package doxygen

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/doxyrst"
)

// LoadIndex reads doxygen's index.xml at path and returns the compounds it
// lists. Member entries nested under the compounds are not indexed.
func LoadIndex(path string) ([]*doxyrst.CompoundRef, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, doxyrst.Errorf(doxyrst.EINVALID, "no root element in %s", path)
	}

	var refs []*doxyrst.CompoundRef
	for _, el := range root.SelectElements("compound") {
		refid := el.SelectAttr("refid")
		name := el.SelectElement("name")
		if refid == nil || name == nil {
			return nil, doxyrst.Errorf(doxyrst.EINVALID, "compound entry in %s missing refid or name", path)
		}

		ref := &doxyrst.CompoundRef{RefID: refid.Value, Name: name.Text()}
		if kind := el.SelectAttr("kind"); kind != nil {
			ref.Kind = kind.Value
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
