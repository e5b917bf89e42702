package shared

type Config struct {
	Environment                 *bool     `yaml:"environment" validate:"required"`
	Port                        *string   `yaml:"port" validate:"required"`
	BackendURL                  *string   `yaml:"backend_url" validate:"required"`
	Cors                        []*string `yaml:"cors" validate:"required"`
	Postgres                    *string   `yaml:"postgres" validate:"required"`
	PostgresReplicas            []*string `yaml:"postgres_replicas"`
	VerifyHost                  *string   `yaml:"verify_host" validate:"required"`
	MinIoEndpoint               *string   `yaml:"minio_endpoint" validate:"required"`
	MinIoAccessKey              *string   `yaml:"minio_access_key" validate:"required"`
	MinIoSecretKey              *string   `yaml:"minio_secret_key" validate:"required"`
	MinIoSecure                 *bool     `yaml:"minio_secure"`
	BucketResource              *string   `yaml:"bucket_resource" validate:"required"`
	TemplateFetchTimeoutSeconds *int      `yaml:"template_fetch_timeout_seconds" validate:"omitempty,min=1"`
	SigningEnabled              *bool     `yaml:"signing_enabled"`
	SigningCertPath             *string   `yaml:"signing_cert_path"`
	SigningKeyPath              *string   `yaml:"signing_key_path"`
}
