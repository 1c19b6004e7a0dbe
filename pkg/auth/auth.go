package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

var jwtAlgorithm = jwt.SigningMethodHS256

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Claims represents the JWT claims: the session identity and its role.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CreateToken creates a new JWT token for an authenticated user
func CreateToken(email string, role models.Role) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwtAlgorithm, claims)
	return token.SignedString(jwtSecret())
}

// VerifyToken verifies a JWT token
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// EnsureManagerExists checks if any manager account exists, if not create one
// from environment variables.
func EnsureManagerExists(db *gorm.DB) error {
	var count int64
	db.Model(&models.UserAccount{}).Where("role = ?", models.RoleManager).Count(&count)

	if count == 0 {
		email := os.Getenv("MANAGER_EMAIL")
		if email == "" {
			email = "manager@staffboard.local"
		}
		password := os.Getenv("MANAGER_PASSWORD")
		if password == "" {
			password = "manager1!"
		}

		hash, err := HashPassword(password)
		if err != nil {
			return err
		}

		user := models.UserAccount{
			Email:        strings.ToLower(email),
			PasswordHash: hash,
			Role:         models.RoleManager,
		}

		return db.Create(&user).Error
	}
	return nil
}
