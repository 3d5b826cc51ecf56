// Package response parses the raw tariff envelope into the inner
// simulation document. The remote service is irregular on three axes the
// parser must absorb: namespace prefixes differ between environments, the
// result payload arrives either as a bare string or as a text-bearing
// element, and the embedded document is either CDATA-wrapped or
// HTML-entity-encoded.
package response

import (
	"bytes"
	"encoding/xml"
	"strings"

	"emprunteo/tarificateur/internal/clienterror"
	"emprunteo/tarificateur/internal/wire"
	"emprunteo/tarificateur/internal/xmltree"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Candidate element names tried in order. The remote's prefixing is not
// stable across environments, so no lookup may hard-code a single key.
var (
	bodyCandidates = []string{"soap:Body", "soapenv:Body", "SOAP-ENV:Body", "s:Body", "Body"}

	faultCandidates = []string{"soap:Fault", "soapenv:Fault", "SOAP-ENV:Fault", "s:Fault", "Fault"}

	faultCodeCandidates    = []string{"faultcode", "faultCode", "Code"}
	faultMessageCandidates = []string{"faultstring", "faultString", "Reason", "message"}

	responseCandidates = []string{
		"tariferSimulationResponse",
		"tar:tariferSimulationResponse",
		"ns1:tariferSimulationResponse",
	}
	resultCandidates = []string{"tariferSimulationResult", "xmlSimulationResult", "return"}
)

var (
	simulationPath = xmlpath.MustCompile("//simulation")
	errorPath      = xmlpath.MustCompile("//listeErreurs/erreur/libelle")
)

// Parse turns the raw envelope body into the simulation document or a
// typed error: RemoteFault for SOAP faults, RemoteValidationError for the
// remote's structured rejection list, ProtocolError when the response does
// not have the expected shape.
func Parse(raw []byte) (*wire.Simulation, error) {
	root, err := xmltree.Parse(bytes.NewReader(raw))
	if err != nil || root == nil {
		log.WithError(err).Error("Response envelope is not parseable XML")
		return nil, &clienterror.ProtocolError{Reason: "invalid envelope"}
	}

	body := root.Child(bodyCandidates...)
	if body == nil {
		return nil, &clienterror.ProtocolError{Reason: "no body"}
	}

	// Faults take precedence over everything else in the body.
	if fault := body.Child(faultCandidates...); fault != nil {
		rf := &clienterror.RemoteFault{
			Code:    fault.Child(faultCodeCandidates...).FlattenText(),
			Message: fault.Child(faultMessageCandidates...).FlattenText(),
		}
		log.WithFields(logrus.Fields{"code": rf.Code, "message": rf.Message}).Warn("Tariff service returned a fault")
		return nil, rf
	}

	inner := extractResult(body)
	if inner == "" {
		return nil, &clienterror.ProtocolError{Reason: "no result"}
	}

	if xmltree.IsEntityEncoded(inner) {
		inner = xmltree.DecodeEntities(inner)
	}

	return parseSimulation(inner)
}

// extractResult locates the embedded result string, tolerating both the
// bare-string and text-bearing-element shapes, and scanning for any
// "result"-named sibling as a last resort.
func extractResult(body *xmltree.Node) string {
	op := body.Child(responseCandidates...)
	if op == nil {
		// Some environments rename the operation wrapper; accept any
		// response-like child before giving up.
		op = body.ChildContaining("response")
	}
	if op == nil {
		return ""
	}

	if result := op.Child(resultCandidates...); result != nil {
		return result.FlattenText()
	}
	if result := op.ChildContaining("result"); result != nil {
		return result.FlattenText()
	}
	// Bare-string shape: the operation element itself carries the text.
	return op.FlattenText()
}

// parseSimulation parses the inner document, distinguishing a structured
// remote rejection from a shape the contract does not cover.
func parseSimulation(inner string) (*wire.Simulation, error) {
	root, err := xmlpath.Parse(strings.NewReader(inner))
	if err != nil {
		log.WithError(err).Error("Inner result document is not parseable XML")
		return nil, &clienterror.ProtocolError{Reason: "invalid inner document"}
	}

	if _, ok := simulationPath.String(root); !ok {
		if messages := collectErrors(root); len(messages) > 0 {
			return nil, &clienterror.RemoteValidationError{Messages: messages}
		}
		return nil, &clienterror.ProtocolError{Reason: "no simulation node"}
	}

	var sim wire.Simulation
	dec := xml.NewDecoder(strings.NewReader(inner))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&sim); err != nil {
		log.WithError(err).Error("Failed to decode simulation document")
		return nil, &clienterror.ProtocolError{Reason: "malformed simulation document"}
	}

	log.WithFields(logrus.Fields{
		"simulation": sim.IDSimulation,
		"insured":    len(sim.Assures),
	}).Debug("Parsed simulation document")
	return &sim, nil
}

func collectErrors(root *xmlpath.Node) []string {
	var messages []string
	iter := errorPath.Iter(root)
	for iter.Next() {
		if msg := strings.TrimSpace(iter.Node().String()); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}
