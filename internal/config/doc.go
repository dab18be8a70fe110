// Package config loads rendezvous settings and validates command options.
//
// Settings are resolved with the priority
//
//	flags > environment > config file > defaults
//
// The config file is YAML and optional:
//
//	calendar:
//	  binary: gog
//	  timezone: America/New_York
//	  start_hour: 12
//	  end_hour: 17
//	  duration: 30
//	places:
//	  binary: goplaces
//	  min_rating: 4.0
//	  limit: 5
//	command_timeout: 30s
//	strict: false
package config
