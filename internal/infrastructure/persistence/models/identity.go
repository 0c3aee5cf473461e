package models

import (
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
)

// RepresentativeModel maps sales reps to the representatives table
type RepresentativeModel struct {
	TenantAggregateModel
	Name         string          `gorm:"type:varchar(200);not null"`
	Email        string          `gorm:"type:varchar(255)"`
	OverheadRate decimal.Decimal `gorm:"type:numeric(7,3);not null;default:0"`
	Active       bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (RepresentativeModel) TableName() string {
	return "representatives"
}

// ToDomain converts the model to a domain Representative
func (m *RepresentativeModel) ToDomain() *identity.Representative {
	r := &identity.Representative{
		Name:         m.Name,
		Email:        m.Email,
		OverheadRate: m.OverheadRate,
		Active:       m.Active,
	}
	m.PopulateTenantAggregateRoot(&r.TenantAggregateRoot)
	return r
}

// RepresentativeModelFromDomain converts a domain Representative to the model
func RepresentativeModelFromDomain(r *identity.Representative) *RepresentativeModel {
	m := &RepresentativeModel{
		Name:         r.Name,
		Email:        r.Email,
		OverheadRate: r.OverheadRate,
		Active:       r.Active,
	}
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	return m
}

// UserModel maps user accounts to the users table
type UserModel struct {
	TenantAggregateModel
	Email        string `gorm:"type:varchar(255);not null;index:idx_users_email"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Name         string `gorm:"type:varchar(200)"`
	Role         string `gorm:"type:varchar(20);not null"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         identity.Role(m.Role),
		Active:       m.Active,
	}
	m.PopulateTenantAggregateRoot(&u.TenantAggregateRoot)
	return u
}

// UserModelFromDomain converts a domain User to the model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		Active:       u.Active,
	}
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	return m
}
