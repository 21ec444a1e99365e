package storage

type AccessPolicy string

const (
	AccessPublic  AccessPolicy = "public"
	AccessPrivate AccessPolicy = "private"
)

// bucketPolicies is the audited list of buckets served without signing.
// A bucket missing from this table is private.
var bucketPolicies = map[string]AccessPolicy{
	"assignments": AccessPublic,
	"updates":     AccessPublic,
	"documents":   AccessPublic,
}

func PolicyFor(bucket string) AccessPolicy {
	if p, ok := bucketPolicies[bucket]; ok {
		return p
	}
	return AccessPrivate
}

func IsPublic(bucket string) bool { return PolicyFor(bucket) == AccessPublic }
