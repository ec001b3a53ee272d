package internal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/smithy-go"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	output *connect.ListInstancesOutput
	err    error
	calls  int
}

func (f *fakeLister) ListInstances(ctx context.Context, params *connect.ListInstancesInput, optFns ...func(*connect.Options)) (*connect.ListInstancesOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func sampleInstances() []types.InstanceSummary {
	return []types.InstanceSummary{
		{
			Id:                     aws.String("11111111-aaaa-bbbb-cccc-000000000001"),
			Arn:                    aws.String("arn:aws:connect:ap-southeast-2:123456789012:instance/1"),
			InstanceAlias:          aws.String("support"),
			InstanceStatus:         types.InstanceStatusActive,
			IdentityManagementType: types.DirectoryTypeConnectManaged,
			InboundCallsEnabled:    aws.Bool(true),
			OutboundCallsEnabled:   aws.Bool(false),
		},
		{
			Id:                     aws.String("11111111-aaaa-bbbb-cccc-000000000002"),
			Arn:                    aws.String("arn:aws:connect:ap-southeast-2:123456789012:instance/2"),
			InstanceAlias:          aws.String("sales"),
			InstanceStatus:         types.InstanceStatusCreationInProgress,
			IdentityManagementType: types.DirectoryTypeSaml,
			InboundCallsEnabled:    aws.Bool(false),
			OutboundCallsEnabled:   aws.Bool(true),
		},
	}
}

// TestFindConnectInstances verifies the summaries come back exactly as the
// client returned them, after a single request.
func TestFindConnectInstances(t *testing.T) {
	want := sampleInstances()
	fake := &fakeLister{output: &connect.ListInstancesOutput{InstanceSummaryList: want}}

	got, err := FindConnectInstances(context.Background(), fake)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, fake.calls)
}

func TestFindConnectInstancesError(t *testing.T) {
	fake := &fakeLister{err: errors.New("timeout")}

	got, err := FindConnectInstances(context.Background(), fake)
	require.Error(t, err)
	assert.Nil(t, got)
}

// TestClassifyListError verifies the error taxonomy: credential rejection is
// reported distinctly, everything else carries the underlying text.
func TestClassifyListError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rejected credentials",
			err: &smithy.GenericAPIError{
				Code:    "UnrecognizedClientException",
				Message: "The security token included in the request is invalid.",
			},
			want: "Authentication error: AWS rejected the supplied credentials",
		},
		{
			name: "generic failure",
			err:  errors.New("timeout"),
			want: "Error listing Amazon Connect instances: timeout",
		},
		{
			name: "other api error",
			err:  &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			want: "Error listing Amazon Connect instances: api error ThrottlingException: slow down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyListError(tt.err))
		})
	}
}

func TestPrintConnectInstancesEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintConnectInstances(&buf, "connect", DefaultRegion, nil)

	assert.Equal(t, "no instances found\n", buf.String())
}

// TestPrintConnectInstances verifies one line per summary, in the order the
// service returned them, with no transformation of the fields.
func TestPrintConnectInstances(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintConnectInstances(&buf, "connect", DefaultRegion, sampleInstances())

	out := buf.String()
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2, lines)
	assert.Contains(t, out, "alias: support, id: 11111111-aaaa-bbbb-cccc-000000000001")
	assert.Contains(t, out, "alias: sales, id: 11111111-aaaa-bbbb-cccc-000000000002")
	assert.Contains(t, out, "status: ACTIVE")
	assert.Contains(t, out, "identity: SAML")
	assert.NotContains(t, out, "no instances found")

	idx1 := bytes.Index(buf.Bytes(), []byte("support"))
	idx2 := bytes.Index(buf.Bytes(), []byte("sales"))
	assert.Less(t, idx1, idx2)
}
