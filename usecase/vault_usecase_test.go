package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/domain/repository"
	"token-tool/infrastructure/persistence"
	"token-tool/usecase"
)

func newTestVault(t *testing.T) repository.IVault {
	t.Helper()
	return persistence.NewVaultRepository(filepath.Join(t.TempDir(), "token_vault.json"))
}

func TestAddRequiresToken(t *testing.T) {
	vaultUsecase := usecase.NewVaultUsecase(newTestVault(t))
	_, err := vaultUsecase.Add(dto.AddTokenRequest{Label: "no token here"})
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrKindValidation, appErr.Kind)
}

func TestAddDefaultsLabelAndType(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	record, err := vaultUsecase.Add(dto.AddTokenRequest{Token: "  EAA-user-token  "})
	require.NoError(t, err)
	assert.Equal(t, "(no label)", record.Label)
	assert.Equal(t, "user", record.Type)
	assert.Equal(t, "EAA-user-token", record.Token)
	assert.NotEmpty(t, record.AddedAt)

	record, err = vaultUsecase.Add(dto.AddTokenRequest{Label: "Fanpage ABC", Token: "EAA-page-token", IsPage: true, PageID: " 123 "})
	require.NoError(t, err)
	assert.Equal(t, "page", record.Type)
	assert.Equal(t, "123", record.PageID)

	assert.Equal(t, 2, vault.Len())
}

func TestAddPagesLabelsFallBackToPageID(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	added, err := vaultUsecase.AddPages([]model.PageInfo{
		{ID: "10", Name: "Page Ten", AccessToken: "tok-10"},
		{ID: "20", AccessToken: "tok-20"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	all := vault.All()
	assert.Equal(t, "Page Ten", all[0].Label)
	assert.Equal(t, "20", all[1].Label)
	assert.Equal(t, "page", all[1].Type)
}

func TestExportImportRoundTripDoublesVault(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	require.NoError(t, vault.Extend([]model.TokenRecord{
		{Label: "A", Token: "t1", Type: "page", PageID: "10", AddedAt: "2024-01-01 00:00:00"},
		{Label: "B", Token: "t2", Type: "user", AddedAt: "2024-01-02 00:00:00"},
	}))

	bundle, err := vaultUsecase.ExportAll()
	require.NoError(t, err)

	res, err := vaultUsecase.Import(bundle.JSONName, bundle.JSON)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 4, res.Total)

	// originals unchanged, imports appended in order
	all := vault.All()
	require.Len(t, all, 4)
	assert.Equal(t, all[0], all[2])
	assert.Equal(t, all[1], all[3])
}

func TestImportRejectsBrokenFileWithoutMutation(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)
	require.NoError(t, vault.Append(model.TokenRecord{Token: "keep-me"}))

	_, err := vaultUsecase.Import("bad.json", []byte("{{{"))
	require.Error(t, err)
	assert.Equal(t, 1, vault.Len())
}

func TestSelectionPreChecksMatchingPageIDs(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	require.NoError(t, vault.Extend([]model.TokenRecord{
		{Label: "Ten", Token: "t1", Type: "page", PageID: "10"},
		{Label: "Twenty", Token: "t2", Type: "page", PageID: "20"},
		{Label: "Thirty", Token: "t3", Type: "page", PageID: "30"},
	}))

	rows := vaultUsecase.Selection(dto.SelectionRequest{IDs: "10, 30"})
	require.Len(t, rows, 3)

	selected := map[string]bool{}
	for _, r := range rows {
		if r.Selected {
			selected[r.PageID] = true
		}
	}
	assert.Equal(t, map[string]bool{"10": true, "30": true}, selected)
}

func TestSelectionSearchFiltersRows(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	require.NoError(t, vault.Extend([]model.TokenRecord{
		{Label: "Fanpage ABC", Token: "t1", Type: "page", PageID: "10"},
		{Label: "Other", Token: "t2", Type: "page", PageID: "20"},
	}))

	rows := vaultUsecase.Selection(dto.SelectionRequest{Search: "fanpage"})
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0].PageID)
	// index still points into the full vault
	assert.Equal(t, 0, rows[0].Index)
}

func TestExportSelectedBuildsBundleFromIndexes(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	require.NoError(t, vault.Extend([]model.TokenRecord{
		{Label: "Ten", Token: "t1", Type: "page", PageID: "10", AddedAt: "2024-01-01 00:00:00"},
		{Label: "Twenty", Token: "t2", Type: "page", PageID: "20", AddedAt: "2024-01-01 00:00:00"},
		{Label: "Thirty", Token: "t3", Type: "page", PageID: "30", AddedAt: "2024-01-01 00:00:00"},
	}))

	bundle, err := vaultUsecase.ExportSelected([]int{0, 2})
	require.NoError(t, err)
	assert.Contains(t, string(bundle.JSON), `"10"`)
	assert.Contains(t, string(bundle.JSON), `"30"`)
	assert.NotContains(t, string(bundle.JSON), `"20"`)
	assert.Contains(t, bundle.JSONName, "token_selected_")
}

func TestExportSelectedValidatesIndexes(t *testing.T) {
	vaultUsecase := usecase.NewVaultUsecase(newTestVault(t))

	_, err := vaultUsecase.ExportSelected([]int{5})
	require.Error(t, err)

	_, err = vaultUsecase.ExportSelected(nil)
	require.Error(t, err)
}

func TestListMasksTokens(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)

	require.NoError(t, vault.Append(model.TokenRecord{Label: "A", Token: "EAAB1234567890XYZ", Type: "page", PageID: "1"}))

	rows := vaultUsecase.List()
	require.Len(t, rows, 1)
	assert.Equal(t, "EAAB12...0XYZ", rows[0].TokenMasked)
}

func TestClearEmptiesVault(t *testing.T) {
	vault := newTestVault(t)
	vaultUsecase := usecase.NewVaultUsecase(vault)
	require.NoError(t, vault.Append(model.TokenRecord{Token: "tok"}))

	require.NoError(t, vaultUsecase.Clear())
	assert.Empty(t, vaultUsecase.List())
}
