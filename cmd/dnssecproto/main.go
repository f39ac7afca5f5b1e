package main

import (
	"bufio"
	"crypto/sha256"
	"os"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/internal/config"
	"github.com/jacksonbarreto/dnssecproto/internal/report"
	"github.com/jacksonbarreto/dnssecproto/pkg/dnskey"
	"github.com/jacksonbarreto/dnssecproto/pkg/dnsrecords"
	"github.com/jacksonbarreto/dnssecproto/pkg/logservice"
)

const configFilePath = ""

func main() {
	if err := config.InitConfig(configFilePath); err != nil {
		panic(err)
	}
	logger := logservice.NewLogServiceDefault()
	logger.Info("Starting dnssecproto")

	if len(os.Args) < 2 {
		logger.Error("usage: dnssecproto <zone-file>")
		os.Exit(1)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer file.Close()

	run := report.NewRun(os.Args[1])
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		record, parseErr := dnsrecords.Parse(line)
		if parseErr != nil {
			logger.Warn("failed to parse line %q: %v", line, parseErr)
			run.RecordFailure()
			continue
		}
		run.RecordParsed(record.Type())
		logger.Debug("parsed %s record for %s", record.Type(), record.Name())

		if key, ok := record.(*dnsrecords.DNSKEYRecord); ok {
			reportDNSKEY(logger, key)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		panic(scanErr)
	}

	run.Finish()
	logger.Info("parsed %d records (%d failures) from %s in %v", run.Total(), run.Failed, run.Source, run.Duration())
}

func reportDNSKEY(logger logservice.Logger, key *dnsrecords.DNSKEYRecord) {
	rdata := dnskey.EmitRDATA(key.Flags, key.Algorithm, key.PublicKey)
	tag := dnskey.CalculateKeyTag(rdata)
	digest, err := dnskey.CalculateDSDigest(key.Name(), rdata, sha256.New())
	if err != nil {
		logger.Warn("could not derive DS digest for %s: %v", key.Name(), err)
		return
	}
	logger.Info("%s DNSKEY %s key tag=%d algorithm=%s DS(SHA-256)=%x",
		key.Name(), key.KeyType(), tag, dnskey.AlgorithmName(key.Algorithm), digest)
}
