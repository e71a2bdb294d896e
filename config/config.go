package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", raw)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Unwrap() time.Duration {
	return time.Duration(d)
}

type Config struct {
	ArtifactPattern string        `yaml:"artifact_pattern"`
	SidecarGlobs    []string      `yaml:"sidecar_globs"`
	Primary         TierConfig    `yaml:"primary"`
	Secondary       TierConfig    `yaml:"secondary"`
	Cloud           CloudConfig   `yaml:"cloud"`
	Metrics         MetricsConfig `yaml:"metrics"`
}

type TierConfig struct {
	Enabled                 bool   `yaml:"enabled"`
	Path                    string `yaml:"path"`
	MaxArtifacts            int    `yaml:"max_artifacts"`
	BandwidthBytesPerSecond int64  `yaml:"bandwidth_bytes_per_second"`
}

type CloudConfig struct {
	Enabled        bool               `yaml:"enabled"`
	Backend        string             `yaml:"backend"`
	MaxArtifacts   int                `yaml:"max_artifacts"`
	Remote         string             `yaml:"remote"`
	RcloneBinary   string             `yaml:"rclone_binary"`
	BandwidthLimit string             `yaml:"bandwidth_limit"`
	UploadTimeout  Duration           `yaml:"upload_timeout"`
	ListTimeout    Duration           `yaml:"list_timeout"`
	DeleteTimeout  Duration           `yaml:"delete_timeout"`
	BatchSize      int                `yaml:"batch_size"`
	Verification   VerificationConfig `yaml:"verification"`
	S3             S3Config           `yaml:"s3"`
}

type VerificationConfig struct {
	Skip        bool     `yaml:"skip"`
	MaxAttempts int      `yaml:"max_attempts"`
	Pause       Duration `yaml:"pause"`
}

type S3Config struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

type MetricsConfig struct {
	Path        string   `yaml:"path"`
	LockTimeout Duration `yaml:"lock_timeout"`
}

const (
	BackendRclone = "rclone"
	BackendS3     = "s3"
)

func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return Parse(contents)
}

func Parse(contents []byte) (Config, error) {
	config := Config{}
	if err := yaml.UnmarshalStrict(contents, &config); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.ArtifactPattern == "" {
		c.ArtifactPattern = "*-backup-*"
	}
	if len(c.SidecarGlobs) == 0 {
		c.SidecarGlobs = []string{"*.sha256", "*.metadata", "*.metadata.sha256"}
	}
	if c.Cloud.Backend == "" {
		c.Cloud.Backend = BackendRclone
	}
	if c.Cloud.BatchSize == 0 {
		c.Cloud.BatchSize = 20
	}
	if c.Cloud.Verification.MaxAttempts == 0 {
		c.Cloud.Verification.MaxAttempts = 2
	}
}

func (c Config) Validate() error {
	for _, tier := range []struct {
		name    string
		enabled bool
		max     int
	}{
		{"primary", c.Primary.Enabled, c.Primary.MaxArtifacts},
		{"secondary", c.Secondary.Enabled, c.Secondary.MaxArtifacts},
		{"cloud", c.Cloud.Enabled, c.Cloud.MaxArtifacts},
	} {
		if tier.enabled && tier.max < 1 {
			return errors.Errorf("%s tier is enabled but max_artifacts is not a positive integer", tier.name)
		}
	}

	if c.Primary.Enabled && c.Primary.Path == "" {
		return errors.New("primary tier is enabled but has no path")
	}
	if c.Secondary.Enabled && c.Secondary.Path == "" {
		return errors.New("secondary tier is enabled but has no path")
	}

	if c.Cloud.Enabled {
		switch c.Cloud.Backend {
		case BackendRclone:
			if c.Cloud.Remote == "" {
				return errors.New("cloud tier is enabled but has no remote address")
			}
		case BackendS3:
			if c.Cloud.S3.Bucket == "" {
				return errors.New("cloud tier is enabled but has no s3 bucket")
			}
		default:
			return errors.Errorf("unknown cloud backend %q", c.Cloud.Backend)
		}
	}

	return nil
}
