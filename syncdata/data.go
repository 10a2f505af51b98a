// Package syncdata holds the process sync data model together with
// the description file parser and the variant orderer.
package syncdata

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gwos/syncdatagen/errors"
)

// AutomaticLocation defines where a synced value is mirrored automatically
type AutomaticLocation string

// Known locations
const (
	NoLocation       AutomaticLocation = ""
	DocumentSyncData AutomaticLocation = "DocumentSyncData"
)

// Option prefixes recognized in the bracketed options list
const (
	optionDocumentSyncData = "DocumentSyncData"
	optionConditional      = "Conditional="
	optionHeader           = "Header="
)

// Data describes one piece of state mirrored from one process to others
type Data struct {
	Name        string
	Namespace   string
	Type        string
	Location    AutomaticLocation
	Conditional string
	Header      string
	// VariantIndex is the discriminant value, set by Order
	VariantIndex int
}

// NewData builds a record and applies the space separated options
func NewData(name, namespace, typ, options string) (*Data, error) {
	d := &Data{
		Name:         name,
		Namespace:    namespace,
		Type:         typ,
		VariantIndex: -1,
	}
	for _, opt := range strings.Fields(options) {
		if err := d.applyOption(opt); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Data) applyOption(opt string) error {
	switch {
	case opt == optionDocumentSyncData:
		d.Location = DocumentSyncData
	case strings.HasPrefix(opt, optionConditional):
		d.Conditional = strings.TrimPrefix(opt, optionConditional)
	case strings.HasPrefix(opt, optionHeader):
		d.Header = strings.TrimPrefix(opt, optionHeader)
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidOption, opt)
	}
	return nil
}

// FullyQualifiedType returns the type with its namespace prefix if any
func (d Data) FullyQualifiedType() string {
	if d.Namespace == "" {
		return d.Type
	}
	return d.Namespace + "::" + d.Type
}

// IsConditional reports whether the record is gated by a build conditional
func (d Data) IsConditional() bool {
	return d.Conditional != ""
}

// IsDocumentSyncData reports whether the record is mirrored into DocumentSyncData
func (d Data) IsDocumentSyncData() bool {
	return d.Location == DocumentSyncData
}

// FieldName returns the name with the first letter lowered
func (d Data) FieldName() string {
	r, size := utf8.DecodeRuneInString(d.Name)
	if r == utf8.RuneError {
		return d.Name
	}
	return string(unicode.ToLower(r)) + d.Name[size:]
}

func (d Data) String() string {
	return fmt.Sprintf("%s : %s", d.Name, d.FullyQualifiedType())
}
