// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package serverpool

// Subscriber listens for servers discovered at runtime. Notification happens
// synchronously inside the merge call that admitted the servers.
type Subscriber interface {
	NotifyServersDiscovered(urls []string)
}

// Subscribe registers a subscriber for discovered-server notifications.
func (p *Pool) Subscribe(sub Subscriber) {
	p.subscribers[sub] = struct{}{}
}

// Unsubscribe removes a previously registered subscriber.
func (p *Pool) Unsubscribe(sub Subscriber) error {
	if _, ok := p.subscribers[sub]; !ok {
		return ErrPoolHasNoReferenceToSubscriber{Subscriber: sub}
	}
	delete(p.subscribers, sub)
	return nil
}

// NumSubscribers returns the number of registered subscribers.
func (p *Pool) NumSubscribers() int {
	return len(p.subscribers)
}
