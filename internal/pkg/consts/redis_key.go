package consts

const (
	SearchFoodKey    = "search:foods:"
	SearchPartnerKey = "search:partners:"
	TokenDenyKey     = "token:deny:"
	UserFollowingKey = "user:following:count:"
)
