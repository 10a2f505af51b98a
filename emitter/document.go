package emitter

import (
	"sort"

	"github.com/gwos/syncdatagen/syncdata"
)

// DocumentHeader renders DocumentSyncData.h with one default-initialized
// field per record flagged DocumentSyncData
func DocumentHeader(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(cLicenseTemplate, opts)
	l.add("#pragma once\n")

	/* every record header is included here, not only the mirrored ones */
	headers := []string{tzoneMallocHeader}
	for _, d := range datas {
		if d.Header != "" {
			headers = append(headers, d.Header)
		}
	}
	sort.Strings(headers)
	l.includes(headers)

	l.render(documentHeaderMidfixTemplate, opts)
	for _, d := range datas {
		if !d.IsDocumentSyncData() {
			continue
		}
		l.guarded(d, func() {
			l.addf("    %s %s = { };", d.FullyQualifiedType(), d.FieldName())
		})
	}

	l.render(documentHeaderSuffixTemplate, opts)
	return l.String()
}

// DocumentImpl renders DocumentSyncData.cpp. The update switch has a case per
// mirrored record; any other discriminant hits RELEASE_ASSERT_NOT_REACHED.
func DocumentImpl(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(cLicenseTemplate, opts)
	l.render(documentImplPrefixTemplate, opts)

	for _, d := range datas {
		if !d.IsDocumentSyncData() {
			continue
		}
		l.guarded(d, func() {
			l.addf("    case ProcessSyncDataType::%s:", d.Name)
			l.addf("        %s = std::get<enumToUnderlyingType(ProcessSyncDataType::%s)>(data.value);", d.FieldName(), d.Name)
			l.add("        break;")
		})
	}

	l.render(documentImplSuffixTemplate, opts)
	return l.String()
}
