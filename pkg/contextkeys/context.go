package contextkeys

type contextKey string

// DBContextKey holds the request's *gorm.DB (pool or an outer transaction).
const DBContextKey = contextKey("db")

// Keys set by the auth middleware on *gin.Context.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
