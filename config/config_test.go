package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"weatherlinx/weather-service/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) setRequiredEnv() {
	s.T().Setenv("DATABASE_NAME", "weather")
	s.T().Setenv("DATABASE_USER", "postgres")
	s.T().Setenv("DATABASE_HOST", "localhost")
	s.T().Setenv("OPENWEATHER_API_KEY", "secret")
}

func (s *ConfigTestSuite) TestLoadConfigDefaults() {
	s.setRequiredEnv()

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal("weather-service", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal("5432", conf.DBPort)
	s.Equal("https://api.openweathermap.org/data/2.5", conf.OpenWeatherBaseURL)
	s.Equal("secret", conf.OpenWeatherAPIKey)
	s.Equal(30*time.Second, conf.HTTPTimeoutDuration())
}

func (s *ConfigTestSuite) TestLoadConfigOverrides() {
	s.setRequiredEnv()
	s.T().Setenv("SERVER_ADDRESS", "127.0.0.1:5000")
	s.T().Setenv("HTTP_TIMEOUT", "5")
	s.T().Setenv("OPENWEATHER_BASE_URL", "http://localhost:9999/data/2.5")

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal("127.0.0.1:5000", conf.ServerAddress)
	s.Equal(5*time.Second, conf.HTTPTimeoutDuration())
	s.Equal("http://localhost:9999/data/2.5", conf.OpenWeatherBaseURL)
}

func (s *ConfigTestSuite) TestLoadConfigMissingAPIKey() {
	s.setRequiredEnv()
	s.T().Setenv("OPENWEATHER_API_KEY", "")

	conf, err := config.LoadConfig()

	s.Require().Error(err)
	s.Nil(conf)
	s.Contains(err.Error(), "OpenWeatherAPIKey")
}

func (s *ConfigTestSuite) TestLoadConfigMissingDatabaseHost() {
	s.setRequiredEnv()
	s.T().Setenv("DATABASE_HOST", "")

	_, err := config.LoadConfig()

	s.Require().Error(err)
	s.Contains(err.Error(), "DBHost")
}

func (s *ConfigTestSuite) TestDSN() {
	conf := &config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "n",
	}

	s.Equal("host=db port=5433 user=u password=p dbname=n sslmode=disable", conf.DSN())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
