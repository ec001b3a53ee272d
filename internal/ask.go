package internal

import (
	"context"
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect/types"
)

func AskConnectInstance(ctx context.Context, client InstanceLister) (*types.InstanceSummary, error) {
	instances, err := FindConnectInstances(ctx, client)
	if err != nil {
		return nil, err
	}

	table := make(map[string]types.InstanceSummary)
	for _, instance := range instances {
		key := fmt.Sprintf("%s\t(%s)", aws.ToString(instance.InstanceAlias), aws.ToString(instance.Id))
		table[key] = instance
	}

	options := make([]string, 0, len(table))
	for k := range table {
		options = append(options, k)
	}
	sort.Strings(options)
	if len(options) == 0 {
		return nil, fmt.Errorf("not found connect instance")
	}

	prompt := &survey.Select{
		Message: "Choose an Amazon Connect instance:",
		Options: options,
	}

	selectKey := ""
	if err := survey.AskOne(prompt, &selectKey, survey.WithIcons(func(icons *survey.IconSet) {
		icons.SelectFocus.Format = "green+hb"
	}), survey.WithPageSize(20)); err != nil {
		return nil, err
	}

	selected := table[selectKey]
	return &selected, nil
}
