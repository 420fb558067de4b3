package ch

import (
	"os"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"formvoice/internal/core/version"
)

// product is one entry of clickhouse.ClientInfo.Products
type product = struct{ Name, Version string }

// BuildClientInfo names this process to the server, shown in system.query_log.
// name defaults to "formvoice" and tag to the build version
func BuildClientInfo(name, tag string) clickhouse.ClientInfo {
	b := version.Info()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "formvoice"
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = b.Version
	}

	ps := []product{
		{Name: name, Version: tag},
		{Name: "go", Version: b.Go},
		{Name: "commit", Version: b.ShortCommit()},
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		ps = append(ps, product{Name: "host", Version: host})
	}
	return clickhouse.ClientInfo{Products: ps}
}
