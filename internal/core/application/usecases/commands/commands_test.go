package commands_test

import (
	"testing"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("  A1 ", " latte\n")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "A1", cmd.OrderID())
	assert.Equal(t, "latte", cmd.Items())
}

func TestNewCreateOrderCommand_BlankFields(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(" ", "")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "value is required: id")
	assert.Contains(t, err.Error(), "value is required: items")
}

func TestNewCompleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewCompleteOrderCommand(" A1 ")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "A1", cmd.OrderID())

	_, err = commands.NewCompleteOrderCommand("\t")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewDeleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand("A1")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "A1", cmd.OrderID())

	_, err = commands.NewDeleteOrderCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteOrderCommand{}.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.DeleteOrderCommand{}.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
}
