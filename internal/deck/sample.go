package deck

// Sample returns the built-in deck used when no deck file is configured.
func Sample() *Deck {
	d, err := sampleFile.Build()
	if err != nil {
		panic(err) // sampleFile is static
	}
	return d
}

var sampleFile = File{Stacks: []StackSpec{
	{
		Name: "Payments",
		Icon: "P",
		Cards: []CardSpec{
			{ID: "pay-latency", Title: "Checkout latency p99 above 2s", Severity: "critical",
				Body: "**checkout-api** p99 has been above *2s* for 10 minutes.\n\n- region: eu-west-1\n- started: 09:42 UTC"},
			{ID: "pay-refunds", Title: "Refund queue backlog growing", Severity: "warning",
				Body: "The refund worker is processing slower than new refunds arrive."},
			{ID: "pay-cert", Title: "Gateway certificate expires in 14 days", Severity: "info",
				Body: "Renew the `pay-gw` certificate before it expires."},
		},
	},
	{
		Name: "Storage",
		Icon: "S",
		Cards: []CardSpec{
			{ID: "db-disk", Title: "Primary DB disk at 91%", Severity: "critical",
				Body: "`pg-main-0` data volume is almost full.\n\n1. Check vacuum\n2. Expand the volume"},
			{ID: "db-replica", Title: "Replica lag 45s", Severity: "warning",
				Body: "`pg-main-2` is lagging behind the primary."},
		},
	},
	{
		Name: "Edge",
		Icon: "E",
		Cards: []CardSpec{
			{ID: "cdn-5xx", Title: "CDN 5xx rate 3%", Severity: "warning",
				Body: "Origin errors concentrated on `/static/*`."},
			{ID: "dns-ttl", Title: "DNS TTL changed on api.example.com", Severity: "info",
				Body: "TTL lowered from 3600 to 60 ahead of the migration."},
			{ID: "waf-block", Title: "WAF blocking spike", Severity: "info",
				Body: "Blocked requests up 4x from a single ASN."},
		},
	},
}}
