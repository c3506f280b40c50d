package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/crowbar/internal/domain"
	domainmocks "github.com/mouse-blink/crowbar/internal/domain/mocks"
	m "github.com/mouse-blink/crowbar/internal/model"
)

func TestRunCmd_PassesAssignments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{
		Path:        "main.rs",
		Assignments: []string{"width=120", "1:GREETING=hi, there"},
	}).Return(nil)

	cmd, _, _ := newTestRoot(newRunCmd())
	cmd.SetArgs(noConfig(t, "run", "main.rs", "--set", "width=120", "-s", "1:GREETING=hi, there"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_WithoutAssignments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Path == m.Path("main.rs") && len(args.Assignments) == 0
	})).Return(nil)

	cmd, _, _ := newTestRoot(newRunCmd())
	cmd.SetArgs(noConfig(t, "run", "main.rs"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_RunFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrRunFailed)

	cmd, _, _ := newTestRoot(newRunCmd())
	cmd.SetArgs(noConfig(t, "run", "main.rs"))
	assert.ErrorIs(t, cmd.Execute(), domain.ErrRunFailed)
}

func TestRunCmd_ExactlyOneFile(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _, _ := newTestRoot(newRunCmd())
	cmd.SetArgs(noConfig(t, "run", "a.rs", "b.rs"))
	require.Error(t, cmd.Execute())
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run FILE", cmd.Use)
	assert.Equal(t, runLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("set"))
}
