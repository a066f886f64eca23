// Package seed loads the default tool catalog into an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/coretech/stack-tracker/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type toolSeed struct {
	name   string
	vendor string
	tags   []string
}

type categorySeed struct {
	name        string
	description string
	tools       []toolSeed
}

type baselineSeed struct {
	name        string
	description string
	required    []string
	optional    []string
}

// categories are inserted with SortOrder following slice position
var categories = []categorySeed{
	{"RMM", "Remote Monitoring and Management", []toolSeed{
		{"Datto RMM", "Datto", nil},
		{"NinjaOne RMM", "NinjaOne", nil},
		{"Syncro", "Syncro", nil},
		{"Atera", "Atera", nil},
	}},
	{"PSA", "Professional Services Automation", []toolSeed{
		{"ConnectWise Manage", "ConnectWise", nil},
		{"Syncro PSA", "Syncro", nil},
		{"Atera PSA", "Atera", nil},
	}},
	{"Deployment", "Software Deployment & Patching", []toolSeed{
		{"PDQ Deploy", "PDQ", nil},
		{"NinjaOne Patching", "NinjaOne", nil},
	}},
	{"MDM", "Mobile Device Management", []toolSeed{
		{"Addigy", "Addigy", []string{"Apple"}},
		{"Kandji", "Kandji", []string{"Apple"}},
		{"Jamf", "Jamf", []string{"Apple"}},
		{"NinjaOne MDM", "NinjaOne", nil},
		{"Intune", "Microsoft", nil},
	}},
	{"IAM", "Identity & Access Management", []toolSeed{
		{"Microsoft Entra ID", "Microsoft", nil},
		{"JumpCloud", "JumpCloud", nil},
		{"Okta", "Okta", nil},
	}},
	{"Endpoint Security", "Antivirus & EDR", []toolSeed{
		{"SentinelOne", "SentinelOne", []string{"EDR"}},
		{"CrowdStrike", "CrowdStrike", []string{"EDR"}},
		{"Huntress", "Huntress", []string{"EDR"}},
		{"Webroot", "OpenText", []string{"AV"}},
		{"ESET", "ESET", []string{"AV"}},
	}},
	{"Email Security", "Email Protection & Filtering", []toolSeed{
		{"Mailprotector CloudFilter", "Mailprotector", nil},
		{"Mailprotector Bracket", "Mailprotector", nil},
		{"Mailprotector Secure Store", "Mailprotector", nil},
		{"Barracuda", "Barracuda", nil},
		{"Microsoft Defender for Office 365", "Microsoft", nil},
	}},
	{"Web Filtering", "DNS & Content Filtering", []toolSeed{
		{"DNSFilter", "DNSFilter", nil},
		{"Cisco Umbrella", "Cisco", nil},
		{"Webroot DNS Protection", "OpenText", nil},
	}},
	{"Backup & DR", "Backup and Disaster Recovery", []toolSeed{
		{"Datto BCDR", "Datto", nil},
		{"Veeam", "Veeam", nil},
		{"Acronis", "Acronis", nil},
		{"Axcient", "Axcient", nil},
	}},
	{"Network", "Network Management", []toolSeed{
		{"Ubiquiti UniFi", "Ubiquiti", nil},
		{"Meraki", "Cisco", nil},
		{"Fortinet", "Fortinet", nil},
	}},
	{"Monitoring", "Infrastructure Monitoring", []toolSeed{
		{"Datto Networking", "Datto", nil},
		{"Auvik", "Auvik", nil},
		{"PRTG", "Paessler", nil},
	}},
	{"Documentation", "IT Documentation", []toolSeed{
		{"IT Glue", "Kaseya", nil},
		{"Hudu", "Hudu", nil},
		{"Confluence", "Atlassian", nil},
	}},
	{"SIEM", "Security Information & Event Management", []toolSeed{
		{"Arctic Wolf", "Arctic Wolf", nil},
		{"Huntress MDR", "Huntress", nil},
		{"Blumira", "Blumira", nil},
	}},
	{"Security Awareness", "Security Awareness Training", []toolSeed{
		{"KnowBe4", "KnowBe4", nil},
		{"Proofpoint Security Awareness", "Proofpoint", nil},
	}},
	{"ITDR", "Identity Threat Detection & Response", []toolSeed{
		{"Huntress ITDR", "Huntress", nil},
		{"Semperis", "Semperis", nil},
	}},
	{"Password Management", "Password Vaults", []toolSeed{
		{"1Password", "1Password", nil},
		{"Keeper", "Keeper", nil},
		{"Bitwarden", "Bitwarden", nil},
	}},
}

var baselines = []baselineSeed{
	{
		name:        "SMB Standard",
		description: "Core stack for small-medium businesses",
		required: []string{
			"NinjaOne RMM", "Microsoft Entra ID", "SentinelOne", "Mailprotector CloudFilter",
			"DNSFilter", "Datto BCDR", "KnowBe4",
		},
		optional: []string{"ConnectWise Manage", "IT Glue", "Huntress"},
	},
	{
		name:        "Compliance Plus",
		description: "Enhanced stack for compliance-driven organizations",
		required: []string{
			"NinjaOne RMM", "ConnectWise Manage", "Microsoft Entra ID", "SentinelOne",
			"Mailprotector CloudFilter", "Mailprotector Bracket", "DNSFilter", "Datto BCDR",
			"Arctic Wolf", "KnowBe4", "IT Glue", "1Password",
		},
		optional: []string{"Huntress ITDR", "Microsoft Defender for Office 365"},
	},
	{
		name:        "Co-Managed IT",
		description: "Stack for organizations with internal IT teams",
		required: []string{
			"NinjaOne RMM", "Microsoft Entra ID", "SentinelOne", "DNSFilter", "Veeam", "KnowBe4",
		},
		optional: []string{"Intune", "Confluence", "PRTG"},
	},
}

// Result counts what a seed run inserted
type Result struct {
	Categories int
	Tools      int
	Baselines  int
	Skipped    bool
}

// Run inserts the default catalog in one transaction. A database that already has
// categories is left untouched and reported as skipped.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*Result, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&domain.Category{}).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if existing > 0 {
		logger.Info("Catalog already present, skipping seed", zap.Int64("categories", existing))
		return &Result{Skipped: true}, nil
	}

	result := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		toolIDs := make(map[string]string)

		for i, c := range categories {
			category := domain.Category{Name: c.name, Description: c.description, SortOrder: i + 1}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to insert category %q: %w", c.name, err)
			}
			result.Categories++

			for _, t := range c.tools {
				vendor := t.vendor
				tags := domain.StringList(t.tags)
				if tags == nil {
					tags = domain.StringList{}
				}
				tool := domain.Tool{Name: t.name, Vendor: &vendor, CategoryID: category.ID, Tags: tags}
				if err := tx.Create(&tool).Error; err != nil {
					return fmt.Errorf("failed to insert tool %q: %w", t.name, err)
				}
				toolIDs[t.name] = tool.ID.String()
				result.Tools++
			}
		}

		for _, b := range baselines {
			required, err := resolve(toolIDs, b.required)
			if err != nil {
				return fmt.Errorf("baseline %q: %w", b.name, err)
			}
			optional, err := resolve(toolIDs, b.optional)
			if err != nil {
				return fmt.Errorf("baseline %q: %w", b.name, err)
			}
			baseline := domain.Baseline{
				Name:            b.name,
				Description:     b.description,
				RequiredToolIDs: required,
				OptionalToolIDs: optional,
			}
			if err := tx.Create(&baseline).Error; err != nil {
				return fmt.Errorf("failed to insert baseline %q: %w", b.name, err)
			}
			result.Baselines++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog seeded",
		zap.Int("categories", result.Categories),
		zap.Int("tools", result.Tools),
		zap.Int("baselines", result.Baselines),
	)
	return result, nil
}

func resolve(toolIDs map[string]string, names []string) (domain.StringList, error) {
	ids := make(domain.StringList, 0, len(names))
	for _, name := range names {
		id, ok := toolIDs[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
