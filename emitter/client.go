package emitter

import (
	"github.com/gwos/syncdatagen/syncdata"
)

const tzoneMallocHeader = "<wtf/TZoneMallocInlines.h>"

// ClientHeader renders ProcessSyncClient.h with one broadcast method per record
func ClientHeader(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(cLicenseTemplate, opts)
	l.add("#pragma once\n")
	l.includes(syncdata.SortedHeaders(datas, tzoneMallocHeader))
	l.render(clientHeaderPrefixTemplate, opts)

	for _, d := range datas {
		l.guarded(d, func() {
			l.addf("    void broadcast%sToOtherProcesses(const %s&);", d.Name, d.FullyQualifiedType())
		})
	}

	l.render(clientHeaderSuffixTemplate, opts)
	return l.String()
}

// ClientImpl renders ProcessSyncClient.cpp, each method wraps the value
// into the variant slot of the record and forwards it to the single hook
func ClientImpl(opts Options, datas []*syncdata.Data) string {
	opts = opts.withDefaults()
	var l lines
	l.render(cLicenseTemplate, opts)
	l.render(clientImplPrefixTemplate, opts)

	for _, d := range datas {
		l.guarded(d, func() {
			l.addf("void ProcessSyncClient::broadcast%sToOtherProcesses(const %s& data)", d.Name, d.FullyQualifiedType())
			l.add("{")
			l.add("    ProcessSyncDataVariant dataVariant;")
			l.addf("    dataVariant.emplace<enumToUnderlyingType(ProcessSyncDataType::%s)>(data);", d.Name)
			l.addf("    broadcastProcessSyncDataToOtherProcesses({ ProcessSyncDataType::%s, WTFMove(dataVariant)});", d.Name)
			l.add("}")
		})
	}

	l.render(clientImplSuffixTemplate, opts)
	return l.String()
}
