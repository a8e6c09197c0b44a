package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/db/dbtest"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
)

type fixture struct {
	db      *gorm.DB
	repo    *repo.GormRepo
	user    models.User
	product models.Product
	order   models.Order
	payment models.Payment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := dbtest.Open(t)
	r := repo.New(gdb)
	ctx := context.Background()

	f := &fixture{db: gdb, repo: r}
	f.user = models.User{Username: "renter", PasswordHash: "x"}
	require.NoError(t, r.CreateUserWithRole(ctx, &f.user, models.RoleUser))

	f.product = models.Product{ProductName: "Drill", Price: 20, Availability: true}
	require.NoError(t, r.CreateProductWithImage(ctx, &f.product, &models.Image{
		Filename: "image-1.png", Filepath: "public/image/image-1.png", Mimetype: "image/png", Size: 10,
	}))

	now := time.Now().UTC().Truncate(time.Second)
	f.order = models.Order{StartDate: now, EndDate: now.Add(48 * time.Hour), Status: models.OrderStatusPending, UsersID: f.user.UsersID, ProductID: f.product.ProductID}
	require.NoError(t, r.CreateOrder(ctx, &f.order))

	f.payment = models.Payment{OrderID: f.order.OrderID, UsersID: f.user.UsersID, ProductID: f.product.ProductID, PaymentDate: now, Amount: 40, Status: "paid", PaymentMode: "card"}
	require.NoError(t, r.CreatePayment(ctx, &f.payment))
	return f
}

func count(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestDeleteProductCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.product.ProductID

	files, err := f.repo.DeleteProductCascade(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"image-1.png"}, files)

	assert.Zero(t, count(t, f.db, &models.Product{}, "product_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.Image{}, "product_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.Order{}, "product_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.Payment{}, "product_id = ?", id))
	assert.EqualValues(t, 1, count(t, f.db, &models.User{}, "users_id = ?", f.user.UsersID))
}

func TestDeleteUserCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.user.UsersID

	require.NoError(t, f.repo.DeleteUserCascade(ctx, id))

	assert.Zero(t, count(t, f.db, &models.User{}, "users_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.UserRole{}, "users_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.Order{}, "users_id = ?", id))
	assert.Zero(t, count(t, f.db, &models.Payment{}, "users_id = ?", id))
	assert.EqualValues(t, 1, count(t, f.db, &models.Product{}, "product_id = ?", f.product.ProductID))
}

func TestDeleteOrder_RemovesItsPayments(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.repo.DeleteOrder(context.Background(), f.order.OrderID))
	assert.Zero(t, count(t, f.db, &models.Order{}, "order_id = ?", f.order.OrderID))
	assert.Zero(t, count(t, f.db, &models.Payment{}, "order_id = ?", f.order.OrderID))
}

func TestCreateUserWithRole_Duplicate(t *testing.T) {
	f := newFixture(t)

	err := f.repo.CreateUserWithRole(context.Background(), &models.User{Username: "renter", PasswordHash: "y"}, models.RoleUser)
	require.ErrorIs(t, err, repo.ErrDuplicate)
	assert.EqualValues(t, 1, count(t, f.db, &models.User{}, "username = ?", "renter"))
}

func TestFindLogin_LowestRoleWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	row, err := f.repo.FindLogin(ctx, "renter")
	require.NoError(t, err)
	require.NotNil(t, row.Role)
	assert.Equal(t, models.RoleUser, *row.Role)

	var admin models.Role
	require.NoError(t, f.db.Where("role_name = ?", models.RoleAdmin).First(&admin).Error)
	var user models.Role
	require.NoError(t, f.db.Where("role_name = ?", models.RoleUser).First(&user).Error)
	require.NoError(t, f.repo.ReplaceUserRoles(ctx, f.user.UsersID, []uint{user.RolesID, admin.RolesID}))

	row, err = f.repo.FindLogin(ctx, "renter")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, *row.Role)

	_, err = f.repo.FindLogin(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplaceUserRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roles, err := f.repo.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)

	require.NoError(t, f.repo.ReplaceUserRoles(ctx, f.user.UsersID, []uint{roles[0].RolesID, roles[0].RolesID}))
	ids, err := f.repo.ListUserRoleIDs(ctx, f.user.UsersID)
	require.NoError(t, err)
	assert.Equal(t, []uint{roles[0].RolesID}, ids)

	require.NoError(t, f.repo.DeleteUserRoles(ctx, f.user.UsersID))
	ids, err = f.repo.ListUserRoleIDs(ctx, f.user.UsersID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListAndGetProduct_WithImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bare := models.Product{ProductName: "Ladder", Price: 5}
	require.NoError(t, f.repo.CreateProductWithImage(ctx, &bare, nil))

	items, err := f.repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ProductImageFilename)
	assert.Equal(t, "image-1.png", *items[0].ProductImageFilename)
	assert.Nil(t, items[1].ProductImageFilename)

	got, err := f.repo.GetProduct(ctx, f.product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.ProductName)

	_, err = f.repo.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProduct_MissingIDIsNoop(t *testing.T) {
	f := newFixture(t)

	n, err := f.repo.UpdateProduct(context.Background(), 999, models.Product{ProductName: "Ghost"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, count(t, f.db, &models.Product{}, "product_name = ?", "Ghost"))
}

func TestOrderLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "renter", all[0].Username)
	assert.EqualValues(t, 20, all[0].Price)

	mine, err := f.repo.ListUserOrders(ctx, f.user.UsersID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Drill", mine[0].ProductName)
	require.NotNil(t, mine[0].Filename)
	assert.Equal(t, "image-1.png", *mine[0].Filename)
}
