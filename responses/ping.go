package responses

// PingResponse is the cluster metadata returned by a ping.
type PingResponse struct {
	Name        string      `json:"name"`
	ClusterName string      `json:"cluster_name"`
	Tagline     string      `json:"tagline"`
	Version     PingVersion `json:"version"`
}

// PingVersion describes the server build.
type PingVersion struct {
	Number        string `json:"number"`
	BuildHash     string `json:"build_hash"`
	BuildDate     string `json:"build_date"`
	BuildSnapshot bool   `json:"build_snapshot"`
	LuceneVersion string `json:"lucene_version"`
}
