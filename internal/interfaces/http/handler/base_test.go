package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appidentity "github.com/procure/backend/internal/application/identity"
	appprocurement "github.com/procure/backend/internal/application/procurement"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/procure/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer wires the full handler stack over an in-memory SQLite
// database so the tests exercise the real wire contract.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.DatabaseConfig{
		Path:            "file::memory:",
		BusyTimeout:     5000,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 60,
	}

	db, err := persistence.NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() {
		_ = db.Close()
	})

	vendorService := appprocurement.NewVendorService(persistence.NewGormVendorRepository(db.DB))
	supplierService := appprocurement.NewSupplierService(persistence.NewGormSupplierRepository(db.DB))
	contractService := appprocurement.NewContractService(persistence.NewGormContractRepository(db.DB))
	authService := appidentity.NewAuthService(persistence.NewGormUserRepository(db.DB), zap.NewNop())

	engine := gin.New()
	root := engine.Group("")

	NewVendorHandler(vendorService).RegisterRoutes(root)
	NewSupplierHandler(supplierService).RegisterRoutes(root)
	NewContractHandler(contractService).RegisterRoutes(root)
	NewAuthHandler(authService).RegisterRoutes(root)
	NewSystemHandler(db).RegisterRoutes(root)

	return engine
}

// performRequest sends a JSON request through the engine and records the
// response
func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
