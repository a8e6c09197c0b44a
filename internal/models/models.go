package models

import (
	"time"
)

type Product struct {
	ProductID          uint    `gorm:"column:product_id;primaryKey;autoIncrement"  json:"product_id"`
	ProductName        string  `gorm:"column:product_name;not null"                json:"product_name"`
	ProductDescription string  `gorm:"column:product_description"                  json:"product_description"`
	Price              float64 `gorm:"column:price;type:numeric(12,2);not null"    json:"price"`
	Availability       bool    `gorm:"column:availability;not null"                json:"availability"`
}

func (Product) TableName() string { return "product" }

// ProductWithImage is a product row plus the filename of its first image, if any.
type ProductWithImage struct {
	Product
	ProductImageFilename *string `gorm:"column:product_image_filename" json:"product_image_filename"`
}

type Image struct {
	ImageID   uint     `gorm:"column:image_id;primaryKey;autoIncrement"  json:"image_id"`
	Filename  string   `gorm:"column:filename;not null"                  json:"filename"`
	Filepath  string   `gorm:"column:filepath;not null"                  json:"filepath"`
	Mimetype  string   `gorm:"column:mimetype"                           json:"mimetype"`
	Size      int64    `gorm:"column:size"                               json:"size"`
	ProductID uint     `gorm:"column:product_id;index;not null"          json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
}

func (Image) TableName() string { return "images" }

type User struct {
	UsersID        uint   `gorm:"column:users_id;primaryKey;autoIncrement" json:"users_id"`
	UsersFirstname string `gorm:"column:users_firstname"                   json:"users_firstname"`
	UsersLastname  string `gorm:"column:users_lastname"                    json:"users_lastname"`
	UsersContact   string `gorm:"column:users_contact"                     json:"users_contact"`
	UsersEmail     string `gorm:"column:users_email"                       json:"users_email"`
	PasswordHash   string `gorm:"column:password_hash;not null"            json:"-"`
	Username       string `gorm:"column:username;uniqueIndex;not null"     json:"username"`
}

func (User) TableName() string { return "users" }

type Role struct {
	RolesID         uint   `gorm:"column:roles_id;primaryKey;autoIncrement" json:"roles_id"`
	RoleName        string `gorm:"column:role_name;uniqueIndex;not null"    json:"role_name"`
	RoleDescription string `gorm:"column:role_description"                  json:"role_description"`
}

func (Role) TableName() string { return "roles" }

type UserRole struct {
	UsersID uint  `gorm:"column:users_id;primaryKey;autoIncrement:false" json:"users_id"`
	RolesID uint  `gorm:"column:roles_id;primaryKey;autoIncrement:false" json:"roles_id"`
	User    *User `gorm:"foreignKey:UsersID;references:UsersID"          json:"-"`
	Role    *Role `gorm:"foreignKey:RolesID;references:RolesID"          json:"-"`
}

func (UserRole) TableName() string { return "users_roles" }

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const OrderStatusPending = "pending"

type Order struct {
	OrderID   uint      `gorm:"column:order_id;primaryKey;autoIncrement"  json:"order_id"`
	StartDate time.Time `gorm:"column:start_date;not null"                json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null"                  json:"end_date"`
	Status    string    `gorm:"column:status;not null"                   json:"status"`
	UsersID   uint      `gorm:"column:users_id;index;not null"            json:"users_id"`
	ProductID uint      `gorm:"column:product_id;index;not null"          json:"product_id"`
	User      *User     `gorm:"foreignKey:UsersID;references:UsersID"     json:"-"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
}

func (Order) TableName() string { return "orders" }

// OrderSummary is a row of the orders list: the order joined with product price and username.
type OrderSummary struct {
	OrderID   uint      `gorm:"column:order_id"   json:"order_id"`
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date"   json:"end_date"`
	Status    string    `gorm:"column:status"     json:"status"`
	Price     float64   `gorm:"column:price"      json:"price"`
	Username  string    `gorm:"column:username"   json:"username"`
	ProductID uint      `gorm:"column:product_id" json:"product_id"`
	UsersID   uint      `gorm:"column:users_id"   json:"users_id"`
}

type UserOrder struct {
	OrderID            uint      `gorm:"column:order_id"            json:"order_id"`
	ProductName        string    `gorm:"column:product_name"        json:"product_name"`
	ProductDescription string    `gorm:"column:product_description" json:"product_description"`
	StartDate          time.Time `gorm:"column:start_date"          json:"start_date"`
	EndDate            time.Time `gorm:"column:end_date"            json:"end_date"`
	Status             string    `gorm:"column:status"              json:"status"`
	Price              float64   `gorm:"column:price"               json:"price"`
	Filename           *string   `gorm:"column:filename"            json:"filename"`
}

type Payment struct {
	PaymentID       uint      `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	OrderID         uint      `gorm:"column:order_id;index;not null"             json:"order_id"`
	UsersID         uint      `gorm:"column:users_id;index;not null"             json:"users_id"`
	ProductID       uint      `gorm:"column:product_id;index;not null"           json:"product_id"`
	PaymentDate     time.Time `gorm:"column:payment_date;not null"               json:"payment_date"`
	Amount          float64   `gorm:"column:amount;type:numeric(12,2);not null"  json:"amount"`
	Status          string    `gorm:"column:status"                              json:"status"`
	PaymentMode     string    `gorm:"column:payment_mode"                        json:"payment_mode"`
	ReferenceNumber string    `gorm:"column:reference_number"                    json:"reference_number"`
	Order           *Order    `gorm:"foreignKey:OrderID;references:OrderID"      json:"-"`
	User            *User     `gorm:"foreignKey:UsersID;references:UsersID"      json:"-"`
	Product         *Product  `gorm:"foreignKey:ProductID;references:ProductID"  json:"-"`
}

func (Payment) TableName() string { return "payment" }
