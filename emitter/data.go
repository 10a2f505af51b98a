package emitter

import (
	"sort"
	"strings"

	"github.com/gwos/syncdatagen/syncdata"
)

// DataHeader renders ProcessSyncData.h: the discriminant enum, placeholder
// aliases for compiled-out types, the variant, and the type/value pair
func DataHeader(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(cLicenseTemplate, opts)
	l.add("#pragma once\n")

	headers := append(syncdata.SortedHeaders(datas), "<variant>")
	sort.Strings(headers)
	l.includes(headers)

	l.render(dataHeaderPrefixTemplate, opts)
	l.add("enum class ProcessSyncDataType : uint8_t {")
	for _, d := range datas {
		l.guarded(d, func() {
			l.addf("    %s = %d,", d.Name, d.VariantIndex)
		})
	}
	l.add("};", " ")

	l.placeholders(datas, func(d *syncdata.Data) string { return d.Type })

	l.add("", "using ProcessSyncDataVariant = std::variant<")
	for i, d := range datas {
		if i < len(datas)-1 {
			l.addf("    %s,", d.FullyQualifiedType())
		} else {
			l.addf("    %s", d.FullyQualifiedType())
		}
	}
	l.add(">;")

	l.render(dataHeaderSuffixTemplate, opts)
	return l.String()
}

// SerializationIn renders the IPC serialization descriptor mirroring
// the enum and variant of ProcessSyncData.h
func SerializationIn(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(hashLicenseTemplate, opts)
	l.render(serializationPrefixTemplate, opts)

	l.addf("enum class %s::ProcessSyncDataType : uint8_t {", opts.Namespace)
	for _, d := range datas {
		l.guarded(d, func() {
			l.addf("    %s,", d.Name)
		})
	}
	l.add("};", " ")

	l.placeholders(datas, func(d *syncdata.Data) string { return d.FullyQualifiedType() })

	types := make([]string, 0, len(datas))
	for _, d := range datas {
		types = append(types, d.FullyQualifiedType())
	}
	l.add("")
	l.addf("using %s::ProcessSyncDataVariant = std::variant<%s>;", opts.Namespace, strings.Join(types, ", "))

	l.render(serializationSuffixTemplate, opts)
	return l.String()
}
