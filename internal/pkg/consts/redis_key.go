package consts

const (
	ReactionCountKey = "reaction:count:"
	FollowerCountKey = "user:follower:count:"
	TokenBlacklist   = "token:blacklist:"
)
