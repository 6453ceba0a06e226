package workitem

const (
	// KeyPrefix is the versioned prefix of persisted older-than listings.
	KeyPrefix = "aqm:v2:asana:olderThan:"
	// LegacyKeyPrefix is the unversioned prefix earlier releases wrote.
	LegacyKeyPrefix = "aqm:asana:olderThan:"
)

// ItemFields is the field projection requested for every listed item.
var ItemFields = []string{
	"gid",
	"name",
	"created_at",
	"permalink_url",
	"assignee.gid",
	"assignee.name",
	"completed",
	"memberships.section.name",
	"memberships.section.gid",
	"memberships.project.gid",
	"memberships.project.name",
	"tags.gid",
	"tags.name",
}

// UserFields is the projection for the current-user lookup.
var UserFields = []string{"gid", "name"}
