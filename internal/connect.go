package internal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/smithy-go"
	"github.com/fatih/color"
)

const authErrorCode = "UnrecognizedClientException"

// InstanceLister is the one capability needed from the Connect API. The real
// client satisfies it; tests substitute a double.
type InstanceLister interface {
	ListInstances(ctx context.Context, params *connect.ListInstancesInput, optFns ...func(*connect.Options)) (*connect.ListInstancesOutput, error)
}

func NewConnectClient(cfg aws.Config) InstanceLister {
	return connect.NewFromConfig(cfg)
}

// FindConnectInstances issues exactly one list request: no pagination token,
// no filters. The returned summaries are passed through unmodified.
func FindConnectInstances(ctx context.Context, client InstanceLister) ([]types.InstanceSummary, error) {
	output, err := client.ListInstances(ctx, &connect.ListInstancesInput{})
	if err != nil {
		return nil, err
	}
	return output.InstanceSummaryList, nil
}

// ClassifyListError maps a ListInstances failure to the user-facing message.
// Credential rejection gets a dedicated message; anything else carries the
// underlying text.
func ClassifyListError(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == authErrorCode {
		return "Authentication error: AWS rejected the supplied credentials"
	}
	return fmt.Sprintf("Error listing Amazon Connect instances: %s", err.Error())
}

func PrintConnectInstances(w io.Writer, cmd, region string, instances []types.InstanceSummary) {
	if len(instances) == 0 {
		fmt.Fprintln(w, color.YellowString("no instances found"))
		return
	}
	for _, instance := range instances {
		LogConnectInstance(w, cmd, region, instance)
	}
}

func LogConnectInstance(w io.Writer, cmd, region string, instance types.InstanceSummary) {
	fmt.Fprintf(w, "%s: region: %s, alias: %s, id: %s, arn: %s, status: %s, identity: %s, inbound: %t, outbound: %t\n",
		color.CyanString(cmd), color.YellowString(region),
		color.YellowString(aws.ToString(instance.InstanceAlias)),
		color.YellowString(aws.ToString(instance.Id)),
		color.BlueString(aws.ToString(instance.Arn)),
		color.GreenString(string(instance.InstanceStatus)),
		color.BlueString(string(instance.IdentityManagementType)),
		aws.ToBool(instance.InboundCallsEnabled),
		aws.ToBool(instance.OutboundCallsEnabled))
}
