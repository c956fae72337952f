package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDriverService_Create(t *testing.T) {
	ctx := context.Background()

	input := service.CreateDriverInput{
		Identifier:    "DRV-0001",
		Name:          "Ana",
		Cnpj:          "12345678000190",
		BirthDate:     time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
		LicenseNumber: "CNH-001",
		LicenseType:   domain.LicenseTypeA,
	}

	t.Run("Success", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		svc := service.NewDriverService(driverRepo, new(MockStorage), testLogger())

		driverRepo.On("GetByCnpj", ctx, input.Cnpj).Return(nil, domain.ErrDriverNotFound)
		driverRepo.On("GetByLicenseNumber", ctx, input.LicenseNumber).Return(nil, domain.ErrDriverNotFound)
		driverRepo.On("Create", ctx, mock.AnythingOfType("*domain.Driver")).Return(nil)

		driver, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.NotEmpty(t, driver.ID)
		assert.True(t, driver.IsCategoryAEnabled())
		driverRepo.AssertExpectations(t)
	})

	t.Run("Duplicate CNPJ rejected", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		svc := service.NewDriverService(driverRepo, new(MockStorage), testLogger())

		driverRepo.On("GetByCnpj", ctx, input.Cnpj).Return(categoryADriver(), nil)

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCnpjAlreadyExists)
		driverRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate license number rejected", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		svc := service.NewDriverService(driverRepo, new(MockStorage), testLogger())

		driverRepo.On("GetByCnpj", ctx, input.Cnpj).Return(nil, domain.ErrDriverNotFound)
		driverRepo.On("GetByLicenseNumber", ctx, input.LicenseNumber).Return(categoryADriver(), nil)

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrLicenseNumberExists)
		driverRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDriverService_UpdateLicenseImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		store := new(MockStorage)
		svc := service.NewDriverService(driverRepo, store, testLogger())

		driver := categoryADriver()
		body := strings.NewReader("fake image")
		driverRepo.On("GetByID", ctx, driver.ID).Return(driver, nil)
		store.On("Upload", ctx, body, "license.png", "image/png").Return("uploads/abc.png", nil)
		driverRepo.On("Update", ctx, driver).Return(nil)

		updated, err := svc.UpdateLicenseImage(ctx, driver.ID, body, "license.png", "image/png")
		require.NoError(t, err)
		assert.Equal(t, "uploads/abc.png", updated.LicenseImagePath)
	})

	t.Run("Unsupported format rejected", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		store := new(MockStorage)
		svc := service.NewDriverService(driverRepo, store, testLogger())

		driver := categoryADriver()
		body := strings.NewReader("fake image")
		driverRepo.On("GetByID", ctx, driver.ID).Return(driver, nil)
		store.On("Upload", ctx, body, "license.jpg", "image/jpeg").Return("", domain.ErrUnsupportedImageType)

		_, err := svc.UpdateLicenseImage(ctx, driver.ID, body, "license.jpg", "image/jpeg")
		assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
		driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
