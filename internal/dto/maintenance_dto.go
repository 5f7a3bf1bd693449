package dto

type RunMaintenanceResponse struct {
	SnapshotVersion int64  `json:"snapshot_version"`
	Partitions      int    `json:"partitions"`
	Duration        string `json:"duration"`
}
