package transport

type CreateProductRequest struct {
	ProductName        string  `json:"product_name"        form:"product_name"        validate:"required"`
	ProductDescription string  `json:"product_description" form:"product_description"`
	Price              float64 `json:"price"               form:"price"               validate:"gte=0"`
	Availability       bool    `json:"availability"        form:"availability"`
}

type UpdateProductRequest struct {
	ProductName        string  `json:"product_name"        validate:"required"`
	ProductDescription string  `json:"product_description"`
	Price              float64 `json:"price"               validate:"gte=0"`
	Availability       bool    `json:"availability"`
}

// SignupRequest accepts the plaintext password as either "password" or "password_hash".
type SignupRequest struct {
	UsersFirstname string `json:"users_firstname"`
	UsersLastname  string `json:"users_lastname"`
	UsersContact   string `json:"users_contact"`
	UsersEmail     string `json:"users_email"   validate:"omitempty,email"`
	Username       string `json:"username"      validate:"required"`
	Password       string `json:"password"`
	PasswordHash   string `json:"password_hash"`
}

func (r SignupRequest) Secret() string {
	if r.Password != "" {
		return r.Password
	}
	return r.PasswordHash
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type UpdateUserRequest struct {
	UsersFirstname string `json:"users_firstname"`
	UsersLastname  string `json:"users_lastname"`
	UsersContact   string `json:"users_contact"`
	UsersEmail     string `json:"users_email"   validate:"omitempty,email"`
	Username       string `json:"username"      validate:"required"`
	Password       string `json:"password"`
	PasswordHash   string `json:"password_hash"`
}

func (r UpdateUserRequest) Secret() string {
	if r.Password != "" {
		return r.Password
	}
	return r.PasswordHash
}

type CreateRoleRequest struct {
	RoleName        string `json:"role_name"        validate:"required"`
	RoleDescription string `json:"role_description"`
}

type ReplaceUserRolesRequest struct {
	RolesID []uint `json:"rolesId"`
}

type CreateOrderRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	ProductID uint   `json:"product_id" validate:"required"`
	Status    string `json:"status"`
}

type UpdateOrderRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Status    string `json:"status"`
	UsersID   uint   `json:"users_id"   validate:"required"`
	ProductID uint   `json:"product_id" validate:"required"`
}

type PaymentRequest struct {
	OrderID         uint    `json:"order_id"     validate:"required"`
	UsersID         uint    `json:"users_id"     validate:"required"`
	ProductID       uint    `json:"product_id"   validate:"required"`
	PaymentDate     string  `json:"payment_date" validate:"required"`
	Amount          float64 `json:"amount"       validate:"gte=0"`
	Status          string  `json:"status"`
	PaymentMode     string  `json:"payment_mode"`
	ReferenceNumber string  `json:"reference_number"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
