package config

type StorageConfig struct {
	Provider string     `yaml:"provider"` // s3, local
	S3       *S3Config  `yaml:"s3"`
	Local    *LocalFS   `yaml:"local"`
}

type S3Config struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNDomain string `yaml:"cdn_domain"`
}

type LocalFS struct {
	BasePath string `yaml:"base_path"`
	BaseURL  string `yaml:"base_url"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider: getEnv("STORAGE_PROVIDER", "local"),
		S3: &S3Config{
			Region:    getEnv("AWS_S3_REGION", "eu-west-1"),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
			CDNDomain: getEnv("AWS_S3_CDN_DOMAIN", ""),
		},
		Local: &LocalFS{
			BasePath: getEnv("LOCAL_STORAGE_PATH", "./uploads"),
			BaseURL:  getEnv("LOCAL_STORAGE_URL", "http://localhost:8080/uploads"),
		},
	}
}
