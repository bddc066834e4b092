package db

import (
	"encoding/json"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// The cache is an external collaborator with a deliberately tiny contract:
// put an analysis result under its id, get it back later. Items are
// {PK: id, Payload: json}.

func newClient() *dynamodb.DynamoDB {
	config := aws.Config{}
	if endpoint := constants.GetCacheEndpoint(); endpoint != "" {
		config.Region = aws.String("localhost")
		config.Endpoint = &endpoint
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

func PutAnalysis(result model.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetCacheTable()),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":      {S: aws.String(result.Id)},
			"Payload": {S: aws.String(string(payload))},
		},
	}
	_, err = newClient().PutItem(input)
	return err
}

func GetAnalysis(id string) (model.AnalysisResult, bool, error) {
	var result model.AnalysisResult
	input := &dynamodb.GetItemInput{
		TableName: aws.String(constants.GetCacheTable()),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	}
	out, err := newClient().GetItem(input)
	if err != nil {
		return result, false, err
	}
	attr, ok := out.Item["Payload"]
	if !ok || attr.S == nil {
		return result, false, nil
	}
	if err := json.Unmarshal([]byte(*attr.S), &result); err != nil {
		return result, false, err
	}
	return result, true, nil
}
