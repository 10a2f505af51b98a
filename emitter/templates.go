package emitter

import (
	"strings"
	"text/template"
)

// DefaultLicense is the license text placed on top of every artifact
const DefaultLicense = `Copyright (C) 2024 Apple Inc. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:
1.  Redistributions of source code must retain the above copyright
    notice, this list of conditions and the following disclaimer.
2.  Redistributions in binary form must reproduce the above copyright
    notice, this list of conditions and the following disclaimer in the
    documentation and/or other materials provided with the distribution.

THIS SOFTWARE IS PROVIDED BY APPLE INC. AND ITS CONTRIBUTORS ` + "``AS IS''" + ` AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL APPLE INC. OR ITS CONTRIBUTORS BE LIABLE FOR
ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.`

var funcs = template.FuncMap{
	"commentLines": commentLines,
}

// commentLines prefixes each line, dropping the trailing space on blank lines
func commentLines(prefix, text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString(strings.TrimRight(prefix, " "))
		} else {
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// Boilerplate templates. Each renders one element of the line list,
// so leading and trailing newlines are significant.
var (
	cLicenseTemplate = mustParse("c_license", `/*
{{commentLines " * " .License}} */
`)

	hashLicenseTemplate = mustParse("hash_license", `#
{{commentLines "# " .License}}#
`)

	clientHeaderPrefixTemplate = mustParse("client_header_prefix", `
namespace {{.Namespace}} {

struct ProcessSyncData;

class ProcessSyncClient {
    WTF_MAKE_TZONE_ALLOCATED_INLINE(ProcessSyncClient);

public:
    ProcessSyncClient() = default;
    virtual ~ProcessSyncClient() = default;
`)

	clientHeaderSuffixTemplate = mustParse("client_header_suffix", `
protected:
    virtual void broadcastProcessSyncDataToOtherProcesses(const ProcessSyncData&) { }
};

} // namespace {{.Namespace}}
`)

	clientImplPrefixTemplate = mustParse("client_impl_prefix", `
#include "config.h"
#include "ProcessSyncClient.h"

#include "ProcessSyncData.h"

namespace {{.Namespace}} {
`)

	clientImplSuffixTemplate = mustParse("client_impl_suffix", `
} // namespace {{.Namespace}}
`)

	dataHeaderPrefixTemplate = mustParse("data_header_prefix", `
namespace {{.Namespace}} {
`)

	dataHeaderSuffixTemplate = mustParse("data_header_suffix", `
struct ProcessSyncData {
    ProcessSyncDataType type;
    ProcessSyncDataVariant value;
};

}; // namespace {{.Namespace}}
`)

	serializationPrefixTemplate = mustParse("serialization_prefix", `
header: <{{.Namespace}}/ProcessSyncData.h>
`)

	serializationSuffixTemplate = mustParse("serialization_suffix", `
struct {{.Namespace}}::ProcessSyncData {
    {{.Namespace}}::ProcessSyncDataType type;
    {{.Namespace}}::ProcessSyncDataVariant value;
};
`)

	documentHeaderMidfixTemplate = mustParse("document_header_midfix", `
namespace {{.Namespace}} {

struct ProcessSyncData;

struct DocumentSyncData {
WTF_MAKE_TZONE_ALLOCATED_INLINE(DocumentSyncData);
public:
    void update(const ProcessSyncData&);
`)

	documentHeaderSuffixTemplate = mustParse("document_header_suffix", `};

} // namespace {{.Namespace}}
`)

	documentImplPrefixTemplate = mustParse("document_impl_prefix", `
#include "config.h"
#include "DocumentSyncData.h"

#include "ProcessSyncData.h"

namespace {{.Namespace}} {

void DocumentSyncData::update(const ProcessSyncData& data)
{
    switch (data.type) {`)

	documentImplSuffixTemplate = mustParse("document_impl_suffix", `    default:
        RELEASE_ASSERT_NOT_REACHED();
    }
}

} //namespace {{.Namespace}}
`)
)
