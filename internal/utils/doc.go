// Package utils provides small helpers shared by the hub and the participant:
// JSON response writing, the preconfigured resty client and identifier
// generation.
package utils
