package domain

// Базовые идентификаторы (BIGSERIAL в Postgres)
type UserID = int64
type PostID = int64

// Пользователь
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Пост. Владелец подтягивается JOIN-ом и может отсутствовать в выдаче.
type Post struct {
	ID    PostID `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	User  *User  `json:"user,omitempty"`
}

// Частичное обновление: nil-поле означает «не трогать».
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type PostUpdate struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// Снимок состояния сервиса для /status
type StatusInfo struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TotalRequests string `json:"totalRequests"`
}
